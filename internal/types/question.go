package types

type Question struct {
	ID                uint             `gorm:"primaryKey;autoIncrement" json:"id"`
	CourseID          uint             `gorm:"column:course_id;not null;index" json:"course_id"`
	Course            *Course          `gorm:"foreignKey:CourseID;references:ID" json:"course,omitempty"`
	COID              uint             `gorm:"column:co_id;not null" json:"co_id"`
	CourseOutcome     *CourseOutcome   `gorm:"foreignKey:COID;references:ID" json:"course_outcome,omitempty"`
	BloomsLevelID     uint             `gorm:"column:blooms_level_id;not null" json:"blooms_level_id"`
	BloomsLevel       *BloomsLevel     `gorm:"foreignKey:BloomsLevelID;references:ID" json:"blooms_level,omitempty"`
	DifficultyLevelID uint             `gorm:"column:difficulty_level_id;not null" json:"difficulty_level_id"`
	DifficultyLevel   *DifficultyLevel `gorm:"foreignKey:DifficultyLevelID;references:ID" json:"difficulty_level,omitempty"`
	UnitID            uint             `gorm:"column:unit_id;not null" json:"unit_id"`
	Unit              *Unit            `gorm:"foreignKey:UnitID;references:ID" json:"unit,omitempty"`
	QuestionText      string           `gorm:"column:question_text;type:text;not null" json:"question_text"`
	Image             *string          `gorm:"column:image;type:varchar(255)" json:"image"`
	Marks             float64          `gorm:"column:marks;not null" json:"marks"`
	Status            bool             `gorm:"column:status;not null;default:true" json:"status"`
}

func (Question) TableName() string { return "questions" }
