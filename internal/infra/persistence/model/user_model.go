package model

import (
	"time"
)

// UserModel mirrors the 'users' table.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Email        string `gorm:"type:varchar(255);unique;not null;index"`
	PasswordHash string `gorm:"column:password;type:varchar(255);not null"`
	IsActive     bool   `gorm:"not null;default:true"`
	RoleID       int64  `gorm:"index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Profile *ProfileModel    `gorm:"foreignKey:UserID"`
	Filter  *UserFilterModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
