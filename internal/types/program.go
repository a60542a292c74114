package types

type Program struct {
	ID     uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name   string `gorm:"column:name;type:varchar(100);uniqueIndex;not null" json:"name"`
	Status bool   `gorm:"column:status;not null;default:true" json:"status"`
}

func (Program) TableName() string { return "programs" }
