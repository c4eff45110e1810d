// Package entity contains the core business objects of the project.
package entity

// Like records that somebody liked a profile. At most one like row exists per
// liked profile. MeLiked marks whether the profile owner liked back, which is
// what makes a like mutual.
type Like struct {
	ID             int64  // Numeric identifier for the like.
	LikedProfileID int64  // The profile that was liked; unique, one row per profile.
	Contact        string // Contact handle left by the liker.
	MeLiked        bool   // True once the profile owner liked back.
	RoleID         int64  // Role grouping for moderation queries.
}
