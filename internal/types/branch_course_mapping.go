package types

type BranchCourseMapping struct {
	ID                     uint                  `gorm:"primaryKey;autoIncrement" json:"id"`
	BranchID               uint                  `gorm:"column:branch_id;not null;index" json:"branch_id"`
	Branch                 *Branch               `gorm:"foreignKey:BranchID;references:ID" json:"branch,omitempty"`
	CourseID               uint                  `gorm:"column:course_id;not null;index" json:"course_id"`
	Course                 *Course               `gorm:"foreignKey:CourseID;references:ID" json:"course,omitempty"`
	ProgramBranchMappingID uint                  `gorm:"column:program_branch_mapping_id;not null" json:"program_branch_mapping_id"`
	ProgramBranchMapping   *ProgramBranchMapping `gorm:"foreignKey:ProgramBranchMappingID;references:ID" json:"program_branch_mapping,omitempty"`
	RegulationID           uint                  `gorm:"column:regulation_id;not null" json:"regulation_id"`
	Regulation             *Regulation           `gorm:"foreignKey:RegulationID;references:ID" json:"regulation,omitempty"`
	Status                 bool                  `gorm:"column:status;not null;default:true" json:"status"`
}

func (BranchCourseMapping) TableName() string { return "branch_course_mappings" }
