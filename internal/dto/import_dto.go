package dto

import "time"

// ImportCandidate is one parsed row as shown to the caller for review. It
// has no identity yet; identity is assigned by the store at commit time.
type ImportCandidate struct {
	Timestamp     time.Time `json:"timestamp"`
	Type          string    `json:"type"`
	AmountML      float64   `json:"amount_ml"`
	AmountEntered float64   `json:"amount_entered"`
	UnitEntered   string    `json:"unit_entered"`
	Side          *string   `json:"side,omitempty"`
	AmountLeftML  *float64  `json:"amount_left_ml,omitempty"`
	AmountRightML *float64  `json:"amount_right_ml,omitempty"`
	DurationMin   *float64  `json:"duration_min,omitempty"`
	Notes         *string   `json:"notes,omitempty"`
	Source        string    `json:"source"`
	Confidence    float64   `json:"confidence"`
}

type ImportPreviewResponse struct {
	UploadId     string            `json:"upload_id"`
	Format       string            `json:"format"`
	Candidates   []ImportCandidate `json:"candidates"`
	FeedingCount int               `json:"feeding_count"`
	PumpingCount int               `json:"pumping_count"`
	Errors       []string          `json:"errors"`
}

type ImportCommitRequest struct {
	UploadId string `json:"upload_id" validate:"required"`
}

type ImportCommitResponse struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// ImportCompletedMessage is the pub/sub payload emitted after a commit.
type ImportCompletedMessage struct {
	UploadId string `json:"upload_id"`
	Imported int    `json:"imported"`
	Skipped  int    `json:"skipped"`
}
