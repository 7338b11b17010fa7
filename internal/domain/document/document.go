// Package document contains the record types stored in the document store.
// These are derived views of relational rows; the relational store stays the
// only source of truth for referential integrity. Every type carries
// validation tags checked before serialization.
package document

import "time"

// Video is the document copy of a relational video row. The document ID is
// the relational primary key in string form, which makes the write an
// idempotent upsert.
type Video struct {
	ID             string    `firestore:"-" validate:"required"`
	CreatorID      int64     `firestore:"creator_id" validate:"required"`
	Title          string    `firestore:"title" validate:"required"`
	Description    string    `firestore:"description"`
	Duration       int       `firestore:"duration" validate:"gt=0"`
	UploadDatetime time.Time `firestore:"upload_datetime" validate:"required"`
	Visibility     string    `firestore:"visibility" validate:"oneof=public private followers_only"`
}

// Comment lives in the Comments subcollection of a video document.
// Comments are an unordered append-only set.
type Comment struct {
	UserID    int64     `firestore:"user_id" validate:"required"`
	Text      string    `firestore:"text" validate:"required"`
	Timestamp time.Time `firestore:"timestamp" validate:"required"`
}

// Reaction references a video and a user. Multiple reactions per user per
// video are allowed; there is no uniqueness constraint.
type Reaction struct {
	UserID    int64     `firestore:"user_id" validate:"required"`
	VideoID   string    `firestore:"video_id" validate:"required"`
	Type      string    `firestore:"type" validate:"oneof=like love laugh angry"`
	Timestamp time.Time `firestore:"timestamp" validate:"required"`
}

// View records one playback of a video by a user.
type View struct {
	UserID       int64     `firestore:"user_id" validate:"required"`
	VideoID      string    `firestore:"video_id" validate:"required"`
	WatchTimeSec int       `firestore:"watch_time_sec" validate:"gte=5,lte=300"`
	Timestamp    time.Time `firestore:"timestamp" validate:"required"`
}

// FeedCache is a precomputed recommendation set keyed by user ID. The
// sample is bounded to at most 20 video IDs.
type FeedCache struct {
	VideoIDs  []string  `firestore:"videos" validate:"max=20"`
	UpdatedAt time.Time `firestore:"updated_at" validate:"required"`
}

// ReactionTypes is the closed set of reaction kinds.
var ReactionTypes = []string{"like", "love", "laugh", "angry"}
