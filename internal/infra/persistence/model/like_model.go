package model

// LikeModel mirrors the 'likes' table. One row per liked profile.
type LikeModel struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	LikedProfileID int64  `gorm:"unique;not null"`
	Contact        string `gorm:"type:varchar(255)"`
	MeLiked        bool   `gorm:"not null;default:false"`
	RoleID         int64  `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (LikeModel) TableName() string {
	return "likes"
}
