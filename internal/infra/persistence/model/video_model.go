package model

import "time"

// VideoModel mirrors the 'video' table. CreatorID references app_user rows
// holding the creator role.
type VideoModel struct {
	ID             int64     `gorm:"column:video_id;primaryKey;autoIncrement"`
	CreatorID      int64     `gorm:"column:creator_id;not null;index"`
	Title          string    `gorm:"column:title;type:varchar(255);not null"`
	Description    string    `gorm:"column:description;type:text"`
	Duration       int       `gorm:"column:duration;not null"`
	UploadDatetime time.Time `gorm:"column:upload_datetime;index"`
	Visibility     string    `gorm:"column:visibility;type:varchar(20);not null"`
}

// TableName explicitly sets the table name for GORM.
func (VideoModel) TableName() string {
	return "video"
}
