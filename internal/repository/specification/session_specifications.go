package specification

import (
	"time"

	"gorm.io/gorm"
)

// TimestampBetween is the duplicate finder's range query: sessions whose
// timestamp falls inside [From, To], both ends inclusive.
type TimestampBetween struct {
	From time.Time
	To   time.Time
}

func (s TimestampBetween) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("timestamp BETWEEN ? AND ?", s.From, s.To)
}

// ByType filters by session type (feeding/pumping)
type ByType struct {
	Type string
}

func (s ByType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("type = ?", s.Type)
}
