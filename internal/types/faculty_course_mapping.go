package types

type FacultyCourseMapping struct {
	ID           uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	FacultyID    uint     `gorm:"column:faculty_id;not null;index" json:"faculty_id"`
	Faculty      *Faculty `gorm:"foreignKey:FacultyID;references:ID" json:"faculty,omitempty"`
	CourseID     uint     `gorm:"column:course_id;not null;index" json:"course_id"`
	Course       *Course  `gorm:"foreignKey:CourseID;references:ID" json:"course,omitempty"`
	CourseType   string   `gorm:"column:course_type;type:varchar(50);not null" json:"course_type"`
	Year         string   `gorm:"column:year;type:varchar(10);not null" json:"year"`
	Semester     string   `gorm:"column:semester;type:varchar(5);not null" json:"semester"`
	AcademicYear string   `gorm:"column:academic_year;type:varchar(20);not null" json:"academic_year"`
	ElectiveType string   `gorm:"column:elective_type;type:varchar(50);not null" json:"elective_type"`
	Status       bool     `gorm:"column:status;not null;default:true" json:"status"`
}

func (FacultyCourseMapping) TableName() string { return "faculty_course_mappings" }
