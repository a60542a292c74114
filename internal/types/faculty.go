package types

// Faculty rows double as login identities. PasswordHash holds a bcrypt
// digest and is excluded from every JSON response.
type Faculty struct {
	ID           uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserType     string  `gorm:"column:user_type;type:varchar(20);not null" json:"user_type"`
	BranchID     *uint   `gorm:"column:branch_id;index" json:"branch_id"`
	Branch       *Branch `gorm:"foreignKey:BranchID;references:ID" json:"branch,omitempty"`
	Honorific    string  `gorm:"column:honorific;type:varchar(10);not null" json:"honorific"`
	Name         string  `gorm:"column:name;type:varchar(100);not null" json:"name"`
	EmpID        string  `gorm:"column:empid;type:varchar(20);uniqueIndex;not null" json:"empid"`
	Phone        string  `gorm:"column:phone;type:varchar(15);not null" json:"phone"`
	Email        string  `gorm:"column:email;type:varchar(100);uniqueIndex;not null" json:"email"`
	Username     string  `gorm:"column:username;type:varchar(50);uniqueIndex;not null" json:"username"`
	PasswordHash string  `gorm:"column:password_hash;type:varchar(255);not null" json:"-"`
	Status       bool    `gorm:"column:status;not null;default:true" json:"status"`
}

func (Faculty) TableName() string { return "faculties" }
