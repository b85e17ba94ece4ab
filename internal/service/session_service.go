package service

import (
	"context"
	"io"
	"time"

	"milktrack-be/internal/dto"
	"milktrack-be/internal/entity"
	"milktrack-be/internal/mapper"
	"milktrack-be/internal/repository/specification"
	"milktrack-be/internal/repository/unitofwork"
	"milktrack-be/pkg/importer"

	"github.com/google/uuid"
)

type ISessionService interface {
	Create(ctx context.Context, req *dto.CreateSessionRequest) (*dto.CreateSessionResponse, error)
	List(ctx context.Context, limit, offset int, sessionType string) (*dto.ListSessionsResponse, error)
	ExportCanonical(ctx context.Context, w io.Writer) error
}

type sessionService struct {
	uowFactory unitofwork.RepositoryFactory
	pipeline   *importer.Pipeline
	mapper     *mapper.SessionMapper
}

func NewSessionService(uowFactory unitofwork.RepositoryFactory, pipeline *importer.Pipeline) ISessionService {
	return &sessionService{
		uowFactory: uowFactory,
		pipeline:   pipeline,
		mapper:     mapper.NewSessionMapper(),
	}
}

// Create stores a manual entry. It goes through the same validator as
// imported rows; entries from the vision service arrive here too, already
// structured, with their own source tag.
func (s *sessionService) Create(ctx context.Context, req *dto.CreateSessionRequest) (*dto.CreateSessionResponse, error) {
	now := time.Now()

	rec := importer.Record{
		Timestamp:     req.Timestamp,
		Type:          importer.SessionType(req.Type),
		AmountEntered: req.Amount,
		UnitEntered:   importer.Unit(req.Unit),
		Side:          req.Side,
		DurationMin:   req.DurationMin,
		Source:        req.Source,
		Confidence:    1.0,
	}
	if rec.UnitEntered == importer.UnitOz {
		rec.AmountML = importer.OzToMl(req.Amount)
	} else {
		rec.AmountML = req.Amount
	}
	if rec.Source == "" {
		rec.Source = importer.SourceManual
	}
	if req.Notes != nil {
		clean := importer.SanitizeText(*req.Notes)
		rec.Notes = &clean
	}

	if err := s.pipeline.ValidateRecord(&rec, now); err != nil {
		return nil, err
	}

	session := s.mapper.FromRecord(rec, now)
	session.Id = uuid.New()

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.SessionRepository().Create(ctx, session); err != nil {
		return nil, err
	}

	return &dto.CreateSessionResponse{Id: session.Id}, nil
}

func (s *sessionService) List(ctx context.Context, limit, offset int, sessionType string) (*dto.ListSessionsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.SessionRepository()

	var filters []specification.Specification
	if sessionType != "" {
		filters = append(filters, specification.ByType{Type: sessionType})
	}

	total, err := repo.Count(ctx, filters...)
	if err != nil {
		return nil, err
	}

	sessions, err := repo.FindAll(ctx, append(filters,
		specification.OrderBy{Field: "timestamp", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)...)
	if err != nil {
		return nil, err
	}

	resp := &dto.ListSessionsResponse{
		Sessions: make([]*dto.SessionResponse, 0, len(sessions)),
		Total:    total,
	}
	for _, session := range sessions {
		resp.Sessions = append(resp.Sessions, sessionResponse(session))
	}
	return resp, nil
}

// ExportCanonical streams every stored session as the canonical 13-column
// CSV, oldest first. Re-importing the file yields the same records within
// unit-conversion tolerance.
func (s *sessionService) ExportCanonical(ctx context.Context, w io.Writer) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	sessions, err := uow.SessionRepository().FindAll(ctx,
		specification.OrderBy{Field: "timestamp", Desc: false},
	)
	if err != nil {
		return err
	}

	records := make([]importer.Record, 0, len(sessions))
	for _, session := range sessions {
		records = append(records, s.mapper.ToRecord(session))
	}
	return importer.WriteCanonical(w, records)
}

func sessionResponse(session *entity.Session) *dto.SessionResponse {
	return &dto.SessionResponse{
		Id:            session.Id,
		Timestamp:     session.Timestamp,
		Type:          session.Type,
		AmountML:      session.AmountML,
		AmountEntered: session.AmountEntered,
		UnitEntered:   session.UnitEntered,
		Side:          session.Side,
		AmountLeftML:  session.AmountLeftML,
		AmountRightML: session.AmountRightML,
		DurationMin:   session.DurationMin,
		Notes:         session.Notes,
		Source:        session.Source,
		Confidence:    session.Confidence,
		CreatedAt:     session.CreatedAt,
		UpdatedAt:     session.UpdatedAt,
	}
}
