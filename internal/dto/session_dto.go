package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSessionRequest struct {
	Timestamp   time.Time `json:"timestamp" validate:"required"`
	Type        string    `json:"type" validate:"required,oneof=feeding pumping"`
	Amount      float64   `json:"amount" validate:"required,gt=0"`
	Unit        string    `json:"unit" validate:"required,oneof=ml oz"`
	Side        *string   `json:"side" validate:"omitempty,oneof=left right both unknown"`
	DurationMin *float64  `json:"duration_min" validate:"omitempty,gt=0"`
	Notes       *string   `json:"notes"`
	Source      string    `json:"source"`
}

type CreateSessionResponse struct {
	Id uuid.UUID `json:"id"`
}

type SessionResponse struct {
	Id            uuid.UUID  `json:"id"`
	Timestamp     time.Time  `json:"timestamp"`
	Type          string     `json:"type"`
	AmountML      float64    `json:"amount_ml"`
	AmountEntered float64    `json:"amount_entered"`
	UnitEntered   string     `json:"unit_entered"`
	Side          *string    `json:"side,omitempty"`
	AmountLeftML  *float64   `json:"amount_left_ml,omitempty"`
	AmountRightML *float64   `json:"amount_right_ml,omitempty"`
	DurationMin   *float64   `json:"duration_min,omitempty"`
	Notes         *string    `json:"notes,omitempty"`
	Source        string     `json:"source"`
	Confidence    float64    `json:"confidence"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"`
}

type ListSessionsResponse struct {
	Sessions []*SessionResponse `json:"sessions"`
	Total    int64              `json:"total"`
}
