package models

import "time"

// Lead rows are insert-only: nothing in the API updates or deletes them.
type Lead struct {
	ID               string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt        time.Time `json:"created_at"`
	FirstName        string    `gorm:"column:first_name" json:"first_name"`
	LastName         string    `gorm:"column:last_name" json:"last_name"`
	CountryResidence string    `gorm:"column:country_residence" json:"country_residence"`
	PhoneCountryCode string    `gorm:"column:phone_country_code" json:"phone_country_code"`
	PhoneNumber      string    `gorm:"column:phone_number" json:"phone_number"`
	Email            string    `gorm:"column:email" json:"email"`
	BedroomsChoice   string    `gorm:"column:bedrooms_choice" json:"bedrooms_choice"`
	BuyTimeline      string    `gorm:"column:buy_timeline" json:"buy_timeline"`
	BuyPurpose       string    `gorm:"column:buy_purpose" json:"buy_purpose"`
	BrokerAssisted   bool      `gorm:"column:broker_assisted" json:"broker_assisted"`
	BrokerType       *string   `gorm:"column:broker_type" json:"broker_type"`
	BrokerAgency     *string   `gorm:"column:broker_agency" json:"broker_agency"`
	Consent          bool      `gorm:"column:consent" json:"consent"`
	Message          *string   `gorm:"column:message;type:text" json:"message"`
	UtmSource        *string   `gorm:"column:utm_source" json:"utm_source"`
	UtmMedium        *string   `gorm:"column:utm_medium" json:"utm_medium"`
	UtmCampaign      *string   `gorm:"column:utm_campaign" json:"utm_campaign"`
	UtmTerm          *string   `gorm:"column:utm_term" json:"utm_term"`
	UtmContent       *string   `gorm:"column:utm_content" json:"utm_content"`
	PageReferrer     *string   `gorm:"column:page_referrer" json:"page_referrer"`
	UserAgent        *string   `gorm:"column:user_agent" json:"user_agent"`
	IP               *string   `gorm:"column:ip" json:"ip"`
}
