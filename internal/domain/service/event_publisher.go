package service

import (
	"context"
)

// LikeEvent represents a like to be processed by the notification worker
type LikeEvent struct {
	RequestID      string `json:"request_id,omitempty"` // For distributed tracing
	LikeID         int64  `json:"like_id"`
	LikedProfileID int64  `json:"liked_profile_id"`
	LikedUserID    int64  `json:"liked_user_id"` // Owner of the liked profile
	Contact        string `json:"contact"`
	MeLiked        bool   `json:"me_liked"` // True when this like completed a mutual pair
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishLikeEvent publishes a like event for async push delivery
	PublishLikeEvent(ctx context.Context, event *LikeEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
