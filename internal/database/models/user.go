package models

// User is a person that can purchase, own, request or approve assets
type User struct {
	BaseModel
	Name         string   `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
	Email        string   `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	Role         UserRole `json:"role" gorm:"type:varchar(20);not null;default:'employee'"`
	PasswordHash string   `json:"-" gorm:"size:100"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
