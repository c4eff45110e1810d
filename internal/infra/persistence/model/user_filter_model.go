package model

// UserFilterModel mirrors the 'user_filters' table. One row per user.
type UserFilterModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	UserID       int64  `gorm:"unique;not null"`
	GenderFilter string `gorm:"type:varchar(20)"`
	CityFilter   string `gorm:"type:varchar(100)"`
	RoleID       int64  `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (UserFilterModel) TableName() string {
	return "user_filters"
}
