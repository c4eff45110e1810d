package model

// ProfileModel mirrors the 'profiles' table. UserID references users.id;
// both user_id and username carry unique indexes.
type ProfileModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	UserID      int64  `gorm:"unique;not null"`
	Username    string `gorm:"type:varchar(50);unique;not null;index"`
	Age         int    `gorm:"not null"`
	Gender      string `gorm:"type:varchar(20)"`
	City        string `gorm:"type:varchar(100);index"`
	Description string `gorm:"type:text"`
	Tags        string `gorm:"type:text"`
	Photo       string `gorm:"type:varchar(255)"`
	PushToken   string `gorm:"type:varchar(255)"`
	RoleID      int64  `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
