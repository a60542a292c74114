package types

// Flat lookup tables for question classification.

type BloomsLevel struct {
	ID     uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name   string `gorm:"column:name;type:varchar(50);uniqueIndex;not null" json:"name"`
	Status bool   `gorm:"column:status;not null;default:true" json:"status"`
}

func (BloomsLevel) TableName() string { return "blooms_levels" }

type DifficultyLevel struct {
	ID     uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name   string `gorm:"column:name;type:varchar(50);uniqueIndex;not null" json:"name"`
	Status bool   `gorm:"column:status;not null;default:true" json:"status"`
}

func (DifficultyLevel) TableName() string { return "difficulty_levels" }

type Unit struct {
	ID     uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name   string `gorm:"column:name;type:varchar(50);uniqueIndex;not null" json:"name"`
	Status bool   `gorm:"column:status;not null;default:true" json:"status"`
}

func (Unit) TableName() string { return "units" }
