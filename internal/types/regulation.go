package types

type Regulation struct {
	ID     uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name   string `gorm:"column:name;type:varchar(50);uniqueIndex;not null" json:"name"`
	Status bool   `gorm:"column:status;not null;default:true" json:"status"`
}

func (Regulation) TableName() string { return "regulations" }
