// Package entity contains the core business objects of the project.
package entity

// Favorite records a profile saved for later. At most one favorite row exists
// per saved profile.
type Favorite struct {
	ID                int64  // Numeric identifier for the favorite.
	FavoriteProfileID int64  // The profile that was saved; unique, one row per profile.
	Contact           string // Contact handle attached to the favorite.
	IsMutual          bool   // True when the saved profile favorited back.
	RoleID            int64  // Role grouping for moderation queries.
}
