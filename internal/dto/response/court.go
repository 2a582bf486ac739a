package response

import (
	"time"

	"court-booking/internal/data/entity"
)

type CourtResponse struct {
	ID                  string              `json:"id"`
	Name                string              `json:"name"`
	Address             string              `json:"address"`
	Description         *string             `json:"description,omitempty"`
	ImageURL            *string             `json:"image_url,omitempty"`
	Latitude            float64             `json:"latitude"`
	Longitude           float64             `json:"longitude"`
	Features            []string            `json:"features"`
	OpeningHours        entity.OpeningHours `json:"opening_hours"`
	Status              entity.CourtStatus  `json:"status"`
	ReservationsEnabled bool                `json:"reservations_enabled"`
	CreatedAt           time.Time           `json:"created_at"`
}

func CourtToResponse(court *entity.Court) CourtResponse {
	features := court.Features
	if features == nil {
		features = []string{}
	}

	hours := court.OpeningHours
	if hours == nil {
		hours = entity.OpeningHours{}
	}

	return CourtResponse{
		ID:                  court.ID.String(),
		Name:                court.Name,
		Address:             court.Address,
		Description:         court.Description,
		ImageURL:            court.ImageURL,
		Latitude:            court.Latitude,
		Longitude:           court.Longitude,
		Features:            features,
		OpeningHours:        hours,
		Status:              court.Status,
		ReservationsEnabled: court.ReservationsEnabled,
		CreatedAt:           court.CreatedAt,
	}
}
