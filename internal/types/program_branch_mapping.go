package types

type ProgramBranchMapping struct {
	ID        uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	ProgramID uint     `gorm:"column:program_id;not null;index" json:"program_id"`
	Program   *Program `gorm:"foreignKey:ProgramID;references:ID" json:"program,omitempty"`
	BranchID  uint     `gorm:"column:branch_id;not null;index" json:"branch_id"`
	Branch    *Branch  `gorm:"foreignKey:BranchID;references:ID" json:"branch,omitempty"`
	Status    bool     `gorm:"column:status;not null;default:true" json:"status"`
}

func (ProgramBranchMapping) TableName() string { return "program_branch_mappings" }
