package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is one feeding or pumping event. AmountML is the canonical volume;
// AmountEntered/UnitEntered preserve what the user (or source file) actually
// typed so redisplay never re-derives through a lossy conversion.
type Session struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Timestamp     time.Time `gorm:"index"`
	Type          string
	AmountML      float64
	AmountEntered float64
	UnitEntered   string
	Side          *string
	AmountLeftML  *float64
	AmountRightML *float64
	DurationMin   *float64
	Notes         *string
	Source        string
	Confidence    float64
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}
