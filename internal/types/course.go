package types

type Course struct {
	ID           uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string      `gorm:"column:name;type:varchar(200);not null" json:"name"`
	Code         string      `gorm:"column:code;type:varchar(20);uniqueIndex;not null" json:"code"`
	BranchID     uint        `gorm:"column:branch_id;not null;index" json:"branch_id"`
	Branch       *Branch     `gorm:"foreignKey:BranchID;references:ID" json:"branch,omitempty"`
	RegulationID uint        `gorm:"column:regulation_id;not null;index" json:"regulation_id"`
	Regulation   *Regulation `gorm:"foreignKey:RegulationID;references:ID" json:"regulation,omitempty"`
	Year         string      `gorm:"column:year;type:varchar(10);not null" json:"year"`
	Semester     string      `gorm:"column:semester;type:varchar(5);not null" json:"semester"`
	CourseType   string      `gorm:"column:course_type;type:varchar(50);not null" json:"course_type"`
	ElectiveType string      `gorm:"column:elective_type;type:varchar(50);not null" json:"elective_type"`
	Credits      float64     `gorm:"column:credits;not null" json:"credits"`
	Status       bool        `gorm:"column:status;not null;default:true" json:"status"`
}

func (Course) TableName() string { return "courses" }
