// Package entity contains the core business objects of the project.
package entity

// UserFilter stores a user's match preferences. One filter row per user.
type UserFilter struct {
	ID           int64  // Numeric identifier for the filter.
	UserID       int64  // The owning user; unique, one filter per user.
	GenderFilter string // Preferred gender, empty for any.
	CityFilter   string // Preferred city, empty for any.
	RoleID       int64  // Role grouping for moderation queries.
}

// FilterStats is an aggregate projection over the user filter table.
type FilterStats struct {
	Total    int64            `json:"total"`
	ByGender map[string]int64 `json:"by_gender"`
	ByCity   map[string]int64 `json:"by_city"`
}
