package entity

import (
	"github.com/google/uuid"
)

type CourtStatus string

const (
	CourtStatusPending  CourtStatus = "pending"
	CourtStatusApproved CourtStatus = "approved"
	CourtStatusRejected CourtStatus = "rejected"
)

// ParseCourtStatus validates a status string coming from client input.
func ParseCourtStatus(s string) (CourtStatus, bool) {
	switch CourtStatus(s) {
	case CourtStatusPending, CourtStatusApproved, CourtStatusRejected:
		return CourtStatus(s), true
	}
	return "", false
}

// HoursRange is the open/close pair for a single weekday,
// both as "15:04" clock strings.
type HoursRange struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// OpeningHours maps a lowercase weekday name ("monday" .. "sunday")
// to its open/close range. Stored as JSONB.
type OpeningHours map[string]HoursRange

type Court struct {
	Base
	Name                string       `db:"name"`
	Address             string       `db:"address"`
	Description         *string      `db:"description"`
	ImageURL            *string      `db:"image_url"`
	Latitude            float64      `db:"latitude"`
	Longitude           float64      `db:"longitude"`
	Features            []string     `db:"features"`
	OpeningHours        OpeningHours `db:"opening_hours"`
	Status              CourtStatus  `db:"status"`
	ReservationsEnabled bool         `db:"reservations_enabled"`
	SubmittedBy         *uuid.UUID   `db:"submitted_by"`
}

// Bookable reports whether the court accepts new reservations
// through the public flow.
func (c *Court) Bookable() bool {
	return c.Status == CourtStatusApproved && c.ReservationsEnabled
}
