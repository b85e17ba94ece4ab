package model

import (
	"time"

	"github.com/google/uuid"
)

type Session struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Timestamp     time.Time `gorm:"not null;index"`
	Type          string    `gorm:"type:varchar(16);not null"`
	AmountML      float64   `gorm:"not null"`
	AmountEntered float64   `gorm:"not null"`
	UnitEntered   string    `gorm:"type:varchar(8);not null"`
	Side          *string   `gorm:"type:varchar(16)"`
	AmountLeftML  *float64
	AmountRightML *float64
	DurationMin   *float64
	Notes         *string `gorm:"type:text"`
	Source        string  `gorm:"type:varchar(16);not null"`
	Confidence    float64 `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

func (Session) TableName() string {
	return "sessions"
}
