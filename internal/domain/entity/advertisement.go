package entity

import "time"

// AdvertisementStatus enumerates the lifecycle states of an advertisement
// request. Requests start pending and move through admin review; approved and
// active are both considered live for the storefront slider.
type AdvertisementStatus string

const (
	AdStatusPending  AdvertisementStatus = "pending"
	AdStatusApproved AdvertisementStatus = "approved"
	AdStatusActive   AdvertisementStatus = "active"
	AdStatusRejected AdvertisementStatus = "rejected"
)

// Valid reports whether the status belongs to the closed set. Status updates
// are validated against it; free-form legacy strings are rejected.
func (s AdvertisementStatus) Valid() bool {
	switch s {
	case AdStatusPending, AdStatusApproved, AdStatusActive, AdStatusRejected:
		return true
	default:
		return false
	}
}

// AdDateLayout is the calendar-date format used for advertisement windows.
// Window bounds are stored and compared as date strings, both ends inclusive.
const AdDateLayout = "2006-01-02"

// Advertisement is a seller's request to feature a medicine on the
// storefront. Engagement counters start at zero and are bumped externally.
type Advertisement struct {
	ID          string              `json:"_id,omitempty"`
	MedicineID  string              `json:"medicineId"`
	Title       string              `json:"title"`
	Description string              `json:"description,omitempty"`
	Image       string              `json:"image,omitempty"`
	SellerEmail string              `json:"sellerEmail"`
	Status      AdvertisementStatus `json:"status"`
	StartDate   string              `json:"startDate,omitempty"` // Inclusive window start, AdDateLayout.
	EndDate     string              `json:"endDate,omitempty"`   // Inclusive window end, AdDateLayout.
	Clicks      int64               `json:"clicks"`
	Impressions int64               `json:"impressions"`
	Conversions int64               `json:"conversions"`
	Cost        float64             `json:"cost"`
	AdminNote   string              `json:"adminNote,omitempty"`
	CreatedAt   time.Time           `json:"createdAt"`
	ReviewedAt  *time.Time          `json:"reviewedAt,omitempty"` // Set when an admin reviews the request.
	UpdatedAt   time.Time           `json:"updatedAt"`
}

// LiveOn reports whether the advertisement should appear in the slider on the
// given calendar date (AdDateLayout).
func (a *Advertisement) LiveOn(date string) bool {
	if a.Status != AdStatusApproved && a.Status != AdStatusActive {
		return false
	}

	return a.StartDate <= date && date <= a.EndDate
}
