// Package entity contains the core business objects of the project.
package entity

// Profile is the public face of a user on the platform. Exactly one profile
// exists per user; both the owning user and the username are unique.
type Profile struct {
	ID          int64  // Numeric identifier for the profile.
	UserID      int64  // The owning user; unique, one profile per user.
	Username    string // Public handle; unique across the platform.
	Age         int    // The user's age in years.
	Gender      string // Free-form gender string as submitted by the user.
	City        string // City the user reports living in.
	Description string // Free-form self description.
	Tags        string // Comma-separated interest tags.
	Photo       string // URL of the profile photo.
	PushToken   string // FCM device token for like notifications; empty disables push.
	RoleID      int64  // Role grouping for moderation queries.
}

// ProfileSearchQuery captures the supported profile search dimensions.
// A zero field means "no constraint on this dimension".
type ProfileSearchQuery struct {
	MinAge int
	MaxAge int
	Gender string
	City   string
	Tags   string
	Skip   int
	Limit  int
}
