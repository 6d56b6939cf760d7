package model

type CreateGigDTO struct {
	Title     string `json:"title" validate:"required"`
	Date      string `json:"date" validate:"required"`
	CityID    string `json:"cityId" validate:"required"`
	IsOutdoor bool   `json:"isOutdoor"`
}
