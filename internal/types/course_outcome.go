package types

type CourseOutcome struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	CourseID    uint    `gorm:"column:course_id;not null;index" json:"course_id"`
	Course      *Course `gorm:"foreignKey:CourseID;references:ID" json:"course,omitempty"`
	OutcomeText string  `gorm:"column:outcome_text;type:text;not null" json:"outcome_text"`
	Status      bool    `gorm:"column:status;not null;default:true" json:"status"`
}

func (CourseOutcome) TableName() string { return "course_outcomes" }
