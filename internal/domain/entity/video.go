package entity

import "time"

// Visibility controls who can watch a video.
type Visibility string

const (
	VisibilityPublic        Visibility = "public"
	VisibilityPrivate       Visibility = "private"
	VisibilityFollowersOnly Visibility = "followers_only"
)

// String returns the string representation of the Visibility.
func (v Visibility) String() string {
	return string(v)
}

// IsValid checks if the Visibility is a valid value.
func (v Visibility) IsValid() bool {
	switch v {
	case VisibilityPublic, VisibilityPrivate, VisibilityFollowersOnly:
		return true
	default:
		return false
	}
}

// Video belongs to a creator-role user. Duration is in seconds.
type Video struct {
	ID             int64      `json:"id"`
	CreatorID      int64      `json:"creator_id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Duration       int        `json:"duration"`
	UploadDatetime time.Time  `json:"upload_datetime"`
	Visibility     Visibility `json:"visibility"`
}
