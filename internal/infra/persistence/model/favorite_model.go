package model

// FavoriteModel mirrors the 'favorites' table. One row per saved profile.
type FavoriteModel struct {
	ID                int64  `gorm:"primaryKey;autoIncrement"`
	FavoriteProfileID int64  `gorm:"unique;not null"`
	Contact           string `gorm:"type:varchar(255)"`
	IsMutual          bool   `gorm:"not null;default:false"`
	RoleID            int64  `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (FavoriteModel) TableName() string {
	return "favorites"
}
