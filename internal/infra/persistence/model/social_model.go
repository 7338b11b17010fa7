package model

import "time"

// ContentReportModel mirrors the 'contentreport' table. ReviewedBy stays
// null while the report is unreviewed.
type ContentReportModel struct {
	ID         int64     `gorm:"column:report_id;primaryKey;autoIncrement"`
	VideoID    int64     `gorm:"column:video_id;not null;index"`
	ReporterID int64     `gorm:"column:reporter_id;not null"`
	ReviewedBy *int64    `gorm:"column:reviewed_by"`
	Reason     string    `gorm:"column:reason;type:varchar(255)"`
	Status     string    `gorm:"column:status;type:varchar(20);not null"`
	ReportDate time.Time `gorm:"column:report_date"`
}

// TableName explicitly sets the table name for GORM.
func (ContentReportModel) TableName() string {
	return "contentreport"
}

// FollowModel mirrors the 'follow' table, a directed user-user edge.
type FollowModel struct {
	FollowerID int64     `gorm:"column:follower_id;primaryKey"`
	FollowedID int64     `gorm:"column:followed_id;primaryKey"`
	FollowDate time.Time `gorm:"column:follow_date"`
}

// TableName explicitly sets the table name for GORM.
func (FollowModel) TableName() string {
	return "follow"
}
