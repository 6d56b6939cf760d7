package entity

import "time"

// Gig is a user-scheduled event tied to a city and a calendar date.
type Gig struct {
	ID    string `json:"id" gorm:"primaryKey"`
	Title string `json:"title"`
	// Date is an ISO-8601 calendar date, e.g. 2026-01-05
	Date      string    `json:"date"`
	CityID    string    `json:"cityId"`
	IsOutdoor bool      `json:"isOutdoor"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Gig) TableName() string {
	return "gigs"
}
