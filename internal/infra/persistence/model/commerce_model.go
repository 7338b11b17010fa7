package model

import "time"

// AdvertiserModel mirrors the 'advertiser' table.
type AdvertiserModel struct {
	ID          int64  `gorm:"column:advertiser_id;primaryKey;autoIncrement"`
	CompanyName string `gorm:"column:company_name;type:varchar(255);not null"`
	BillingInfo string `gorm:"column:billing_info;type:text"`
}

// TableName explicitly sets the table name for GORM.
func (AdvertiserModel) TableName() string {
	return "advertiser"
}

// CampaignModel mirrors the 'campaign' table.
type CampaignModel struct {
	ID                int64     `gorm:"column:campaign_id;primaryKey;autoIncrement"`
	AdvertiserID      int64     `gorm:"column:advertiser_id;not null;index"`
	Budget            float64   `gorm:"column:budget;type:decimal(10,2);not null"`
	StartDate         time.Time `gorm:"column:start_date;not null"`
	EndDate           time.Time `gorm:"column:end_date;not null"`
	TargetingCriteria string    `gorm:"column:targeting_criteria;type:text"`
}

// TableName explicitly sets the table name for GORM.
func (CampaignModel) TableName() string {
	return "campaign"
}

// SubscriptionPlanModel mirrors the 'subscriptionplan' table.
type SubscriptionPlanModel struct {
	ID           int64   `gorm:"column:plan_id;primaryKey;autoIncrement"`
	Name         string  `gorm:"column:name;type:varchar(100);not null"`
	Price        float64 `gorm:"column:price;type:decimal(10,2);not null"`
	DurationDays int     `gorm:"column:duration_days;not null"`
	Description  string  `gorm:"column:description;type:text"`
}

// TableName explicitly sets the table name for GORM.
func (SubscriptionPlanModel) TableName() string {
	return "subscriptionplan"
}

// SubscriptionModel mirrors the 'subscription' table.
type SubscriptionModel struct {
	ID           int64     `gorm:"column:subscription_id;primaryKey;autoIncrement"`
	SubscriberID int64     `gorm:"column:subscriber_id;not null;index"`
	CreatorID    int64     `gorm:"column:creator_id;not null;index"`
	PlanID       int64     `gorm:"column:plan_id;not null"`
	StartDate    time.Time `gorm:"column:start_date"`
	EndDate      time.Time `gorm:"column:end_date"`
	Status       string    `gorm:"column:status;type:varchar(20);not null"`
}

// TableName explicitly sets the table name for GORM.
func (SubscriptionModel) TableName() string {
	return "subscription"
}
