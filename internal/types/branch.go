package types

// Branch carries no program column of its own. The program linkage lives
// in program_branch_mappings and is resolved onto ProgramName at read time.
type Branch struct {
	ID     uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name   string `gorm:"column:name;type:varchar(100);not null" json:"name"`
	Code   string `gorm:"column:code;type:varchar(10);uniqueIndex;not null" json:"code"`
	Status bool   `gorm:"column:status;not null;default:true" json:"status"`

	// Never persisted; populated by the branch service on every read.
	ProgramName *string `gorm:"-" json:"program_name"`
}

func (Branch) TableName() string { return "branches" }
