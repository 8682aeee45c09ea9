package profile

import "github.com/pyoushmadan10/chatify/internal/pubsub"

// Updated is the payload of the ProfileUpdated event.
type Updated struct {
	UserID     string `json:"userId"`
	ProfilePic string `json:"profilePic"`
}

// ProfileUpdated is published after a user's profile picture changes.
var ProfileUpdated = pubsub.NewEvent[Updated]("profile.updated")
