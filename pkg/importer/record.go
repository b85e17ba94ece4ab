package importer

import "time"

type SessionType string

const (
	SessionFeeding SessionType = "feeding"
	SessionPumping SessionType = "pumping"
)

type Unit string

const (
	UnitML Unit = "ml"
	UnitOz Unit = "oz"
)

const (
	SideLeft    = "left"
	SideRight   = "right"
	SideBoth    = "both"
	SideUnknown = "unknown"
)

const (
	SourceManual   = "manual"
	SourceImported = "imported"
	SourceOCR      = "ocr"
	SourceAIVision = "ai_vision"
)

// NormalizeSource coerces anything outside the allow-list to "imported".
// Unrecognized values are never echoed back into a stored record.
func NormalizeSource(s string) string {
	switch s {
	case SourceManual, SourceImported, SourceOCR, SourceAIVision:
		return s
	default:
		return SourceImported
	}
}

// Record is the canonical candidate every parser converges on. Optional
// fields are pointers: absent is nil, never a stored zero.
type Record struct {
	Timestamp     time.Time
	Type          SessionType
	AmountML      float64
	AmountEntered float64
	UnitEntered   Unit
	Side          *string
	AmountLeftML  *float64
	AmountRightML *float64
	DurationMin   *float64
	Notes         *string
	Source        string
	Confidence    float64

	// DailyAggregate marks a pivot-table day total. These legitimately
	// exceed the per-session amount cap and are exempt from it.
	DailyAggregate bool
}

// Result is the pipeline output for one file.
type Result struct {
	Records      []Record
	FeedingCount int
	PumpingCount int
	Errors       []string
}

// Limits carries the pipeline's tunable bounds so tests can exercise
// boundary values without recompiling.
type Limits struct {
	MaxAmountML          float64
	MaxDurationMin       float64
	MaxFutureSkew        time.Duration
	MaxWorkbookRows      int
	DuplicateWindow      time.Duration
	DuplicateToleranceML float64
}

func DefaultLimits() Limits {
	return Limits{
		MaxAmountML:          500,
		MaxDurationMin:       600,
		MaxFutureSkew:        24 * time.Hour,
		MaxWorkbookRows:      50000,
		DuplicateWindow:      10 * time.Minute,
		DuplicateToleranceML: 5,
	}
}
