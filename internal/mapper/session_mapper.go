package mapper

import (
	"time"

	"milktrack-be/internal/entity"
	"milktrack-be/internal/model"
	"milktrack-be/pkg/importer"
)

type SessionMapper struct{}

func NewSessionMapper() *SessionMapper {
	return &SessionMapper{}
}

func (m *SessionMapper) ToEntity(s *model.Session) *entity.Session {
	if s == nil {
		return nil
	}

	var updatedAt *time.Time
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		updatedAt = &t
	}

	return &entity.Session{
		Id:            s.Id,
		Timestamp:     s.Timestamp,
		Type:          s.Type,
		AmountML:      s.AmountML,
		AmountEntered: s.AmountEntered,
		UnitEntered:   s.UnitEntered,
		Side:          s.Side,
		AmountLeftML:  s.AmountLeftML,
		AmountRightML: s.AmountRightML,
		DurationMin:   s.DurationMin,
		Notes:         s.Notes,
		Source:        s.Source,
		Confidence:    s.Confidence,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     updatedAt,
	}
}

func (m *SessionMapper) ToModel(s *entity.Session) *model.Session {
	if s == nil {
		return nil
	}

	var updatedAt time.Time
	if s.UpdatedAt != nil {
		updatedAt = *s.UpdatedAt
	}

	return &model.Session{
		Id:            s.Id,
		Timestamp:     s.Timestamp,
		Type:          s.Type,
		AmountML:      s.AmountML,
		AmountEntered: s.AmountEntered,
		UnitEntered:   s.UnitEntered,
		Side:          s.Side,
		AmountLeftML:  s.AmountLeftML,
		AmountRightML: s.AmountRightML,
		DurationMin:   s.DurationMin,
		Notes:         s.Notes,
		Source:        s.Source,
		Confidence:    s.Confidence,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     updatedAt,
	}
}

// FromRecord turns a validated pipeline candidate into a persistable
// session. created_at/updated_at are stamped "now" for fresh imports.
func (m *SessionMapper) FromRecord(rec importer.Record, now time.Time) *entity.Session {
	return &entity.Session{
		Timestamp:     rec.Timestamp,
		Type:          string(rec.Type),
		AmountML:      rec.AmountML,
		AmountEntered: rec.AmountEntered,
		UnitEntered:   string(rec.UnitEntered),
		Side:          rec.Side,
		AmountLeftML:  rec.AmountLeftML,
		AmountRightML: rec.AmountRightML,
		DurationMin:   rec.DurationMin,
		Notes:         rec.Notes,
		Source:        rec.Source,
		Confidence:    rec.Confidence,
		CreatedAt:     now,
	}
}

// ToRecord is the export-side inverse of FromRecord.
func (m *SessionMapper) ToRecord(s *entity.Session) importer.Record {
	return importer.Record{
		Timestamp:     s.Timestamp,
		Type:          importer.SessionType(s.Type),
		AmountML:      s.AmountML,
		AmountEntered: s.AmountEntered,
		UnitEntered:   importer.Unit(s.UnitEntered),
		Side:          s.Side,
		AmountLeftML:  s.AmountLeftML,
		AmountRightML: s.AmountRightML,
		DurationMin:   s.DurationMin,
		Notes:         s.Notes,
		Source:        s.Source,
		Confidence:    s.Confidence,
	}
}

func (m *SessionMapper) ToEntities(sessions []*model.Session) []*entity.Session {
	entities := make([]*entity.Session, len(sessions))
	for i, s := range sessions {
		entities[i] = m.ToEntity(s)
	}
	return entities
}

func (m *SessionMapper) ToModels(sessions []*entity.Session) []*model.Session {
	models := make([]*model.Session, len(sessions))
	for i, s := range sessions {
		models[i] = m.ToModel(s)
	}
	return models
}
