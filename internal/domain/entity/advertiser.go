package entity

import "time"

// Advertiser represents a company profile that funds ad campaigns.
type Advertiser struct {
	ID          int64  `json:"id"`
	CompanyName string `json:"company_name"`
	BillingInfo string `json:"billing_info"`
}

// Campaign belongs to exactly one advertiser. Its date window is always
// between 7 and 30 days long.
type Campaign struct {
	ID                int64     `json:"id"`
	AdvertiserID      int64     `json:"advertiser_id"`
	Budget            float64   `json:"budget"`
	StartDate         time.Time `json:"start_date"`
	EndDate           time.Time `json:"end_date"`
	TargetingCriteria string    `json:"targeting_criteria"`
}
