package entity

import "time"

// ReportStatus represents the review state of a content report.
type ReportStatus string

const (
	ReportPending  ReportStatus = "pending"
	ReportResolved ReportStatus = "resolved"
	ReportRejected ReportStatus = "rejected"
)

// String returns the string representation of the ReportStatus.
func (s ReportStatus) String() string {
	return string(s)
}

// IsValid checks if the ReportStatus is a valid value.
func (s ReportStatus) IsValid() bool {
	switch s {
	case ReportPending, ReportResolved, ReportRejected:
		return true
	default:
		return false
	}
}

// ContentReport is a user complaint about a video. ReviewedBy is the
// admin who handled it, nil while the report sits unreviewed.
type ContentReport struct {
	ID         int64        `json:"id"`
	VideoID    int64        `json:"video_id"`
	ReporterID int64        `json:"reporter_id"`
	ReviewedBy *int64       `json:"reviewed_by,omitempty"`
	Reason     string       `json:"reason"`
	Status     ReportStatus `json:"status"`
	ReportDate time.Time    `json:"report_date"`
}
