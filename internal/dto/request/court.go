package request

// HoursRangeRequest mirrors entity.HoursRange for submissions.
type HoursRangeRequest struct {
	Open  string `json:"open" validate:"required,datetime=15:04"`
	Close string `json:"close" validate:"required,datetime=15:04"`
}

type SubmitCourtRequest struct {
	Name         string                       `json:"name" validate:"required,min=1,max=100"`
	Address      string                       `json:"address" validate:"required,min=1,max=200"`
	Description  *string                      `json:"description,omitempty" validate:"omitempty,max=2000"`
	ImageURL     *string                      `json:"image_url,omitempty" validate:"omitempty,url"`
	Latitude     float64                      `json:"latitude" validate:"latitude"`
	Longitude    float64                      `json:"longitude" validate:"longitude"`
	Features     []string                     `json:"features,omitempty" validate:"omitempty,dive,min=1,max=50"`
	OpeningHours map[string]HoursRangeRequest `json:"opening_hours,omitempty" validate:"omitempty,dive"`
}

type UpdateCourtRequest struct {
	Name                *string                      `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Address             *string                      `json:"address,omitempty" validate:"omitempty,min=1,max=200"`
	Description         *string                      `json:"description,omitempty" validate:"omitempty,max=2000"`
	ImageURL            *string                      `json:"image_url,omitempty" validate:"omitempty,url"`
	Latitude            *float64                     `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude           *float64                     `json:"longitude,omitempty" validate:"omitempty,longitude"`
	Features            []string                     `json:"features,omitempty" validate:"omitempty,dive,min=1,max=50"`
	OpeningHours        map[string]HoursRangeRequest `json:"opening_hours,omitempty" validate:"omitempty,dive"`
	ReservationsEnabled *bool                        `json:"reservations_enabled,omitempty"`
}

type SetCourtStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
