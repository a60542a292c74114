package types

// GeneratedQP records a produced question paper. Questions is an opaque
// caller-defined blob (typically a JSON-encoded list of question ids);
// the service never inspects it. CreatedAt is a plain RFC 3339 string,
// stamped server-side when the caller omits it.
type GeneratedQP struct {
	ID             uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	ProgramID      uint        `gorm:"column:program_id;not null;index" json:"program_id"`
	Program        *Program    `gorm:"foreignKey:ProgramID;references:ID" json:"program,omitempty"`
	CourseID       uint        `gorm:"column:course_id;not null;index" json:"course_id"`
	Course         *Course     `gorm:"foreignKey:CourseID;references:ID" json:"course,omitempty"`
	AssessmentType string      `gorm:"column:assessment_type;type:varchar(50);not null" json:"assessment_type"`
	DateOfExam     string      `gorm:"column:date_of_exam;type:varchar(20);not null" json:"date_of_exam"`
	RegulationID   uint        `gorm:"column:regulation_id;not null" json:"regulation_id"`
	Regulation     *Regulation `gorm:"foreignKey:RegulationID;references:ID" json:"regulation,omitempty"`
	Year           string      `gorm:"column:year;type:varchar(10);not null" json:"year"`
	Semester       string      `gorm:"column:semester;type:varchar(5);not null" json:"semester"`
	AcademicYear   string      `gorm:"column:academic_year;type:varchar(20);not null" json:"academic_year"`
	Questions      string      `gorm:"column:questions;type:text;not null" json:"questions"`
	CreatedAt      string      `gorm:"column:created_at;type:varchar(25);not null" json:"created_at"`
}

func (GeneratedQP) TableName() string { return "generated_qps" }
