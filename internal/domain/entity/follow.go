package entity

import "time"

// Follow is a directed edge between two users.
type Follow struct {
	FollowerID int64     `json:"follower_id"`
	FollowedID int64     `json:"followed_id"`
	FollowDate time.Time `json:"follow_date"`
}
