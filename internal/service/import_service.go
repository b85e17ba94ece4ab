package service

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"time"

	"milktrack-be/internal/dto"
	"milktrack-be/internal/entity"
	"milktrack-be/internal/mapper"
	"milktrack-be/internal/pkg/logger"
	"milktrack-be/internal/repository/memory"
	"milktrack-be/internal/repository/unitofwork"
	"milktrack-be/pkg/importer"

	"github.com/google/uuid"
)

var ErrUploadNotFound = errors.New("upload not found or expired")

type IImportService interface {
	Preview(ctx context.Context, filename string, data []byte) (*dto.ImportPreviewResponse, error)
	Commit(ctx context.Context, req *dto.ImportCommitRequest) (*dto.ImportCommitResponse, error)
	FindDuplicates(ctx context.Context, ts time.Time, amountML float64, sessionType string) ([]*entity.Session, error)
}

type importService struct {
	uowFactory       unitofwork.RepositoryFactory
	pending          *memory.PendingImportRepository
	pipeline         *importer.Pipeline
	mapper           *mapper.SessionMapper
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewImportService(
	uowFactory unitofwork.RepositoryFactory,
	pending *memory.PendingImportRepository,
	pipeline *importer.Pipeline,
	publisherService IPublisherService,
	log logger.ILogger,
) IImportService {
	return &importService{
		uowFactory:       uowFactory,
		pending:          pending,
		pipeline:         pipeline,
		mapper:           mapper.NewSessionMapper(),
		publisherService: publisherService,
		logger:           log,
	}
}

// Preview runs the pipeline over the uploaded bytes and stashes the accepted
// candidates for the commit step. Row failures come back as error strings,
// not as a failed call.
func (s *importService) Preview(ctx context.Context, filename string, data []byte) (*dto.ImportPreviewResponse, error) {
	result := s.pipeline.Parse(data, time.Now())

	resp := &dto.ImportPreviewResponse{
		Format:       importer.Detect(data).String(),
		Candidates:   make([]dto.ImportCandidate, 0, len(result.Records)),
		FeedingCount: result.FeedingCount,
		PumpingCount: result.PumpingCount,
		Errors:       result.Errors,
	}
	if resp.Errors == nil {
		resp.Errors = []string{}
	}
	for _, rec := range result.Records {
		resp.Candidates = append(resp.Candidates, candidateFromRecord(rec))
	}

	if len(result.Records) > 0 {
		uploadId := uuid.NewString()
		s.pending.Save(&memory.PendingImport{
			Id:        uploadId,
			Filename:  filename,
			Records:   result.Records,
			CreatedAt: time.Now(),
		})
		resp.UploadId = uploadId
	}

	s.logger.Info("IMPORT_SERVICE", "Parsed upload", map[string]interface{}{
		"filename":   filename,
		"format":     resp.Format,
		"candidates": len(resp.Candidates),
		"errors":     len(resp.Errors),
	})
	return resp, nil
}

// Commit is the import transaction coordinator: one unit of work wraps the
// whole batch, and within it each candidate is duplicate-checked and then
// inserted or skipped. Either every decided insert lands or none do.
func (s *importService) Commit(ctx context.Context, req *dto.ImportCommitRequest) (*dto.ImportCommitResponse, error) {
	batch, ok := s.pending.Get(req.UploadId)
	if !ok {
		return nil, ErrUploadNotFound
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	repo := uow.SessionRepository()
	now := time.Now()
	imported, skipped := 0, 0

	for _, rec := range batch.Records {
		duplicates, err := s.findDuplicatesIn(ctx, repo, rec.Timestamp, rec.AmountML, string(rec.Type))
		if err != nil {
			return nil, err
		}
		if len(duplicates) > 0 {
			skipped++
			continue
		}
		session := s.mapper.FromRecord(rec, now)
		session.Id = uuid.New()
		if err := repo.Create(ctx, session); err != nil {
			return nil, err
		}
		imported++
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}
	s.pending.Delete(req.UploadId)

	s.logger.Info("IMPORT_SERVICE", "Committed import batch", map[string]interface{}{
		"upload_id": req.UploadId,
		"imported":  imported,
		"skipped":   skipped,
	})

	event := dto.ImportCompletedMessage{
		UploadId: req.UploadId,
		Imported: imported,
		Skipped:  skipped,
	}
	if payload, err := json.Marshal(event); err == nil {
		if err := s.publisherService.Publish(ctx, payload); err != nil {
			s.logger.Warn("IMPORT_SERVICE", "Failed to publish import event", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	return &dto.ImportCommitResponse{Imported: imported, Skipped: skipped}, nil
}

// FindDuplicates answers "does this look like an already-stored session"
// outside a commit, e.g. for a pre-save warning in a client.
func (s *importService) FindDuplicates(ctx context.Context, ts time.Time, amountML float64, sessionType string) ([]*entity.Session, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return s.findDuplicatesIn(ctx, uow.SessionRepository(), ts, amountML, sessionType)
}

// findDuplicatesIn queries the store for sessions within the tolerance
// window: timestamp within +-DuplicateWindow and canonical amount within
// DuplicateToleranceML, both bounds inclusive. A stored session with a
// different type is never a duplicate; one with no type matches anything.
func (s *importService) findDuplicatesIn(
	ctx context.Context,
	repo interface {
		FindInRange(ctx context.Context, from, to time.Time) ([]*entity.Session, error)
	},
	ts time.Time,
	amountML float64,
	sessionType string,
) ([]*entity.Session, error) {
	limits := s.pipeline.Limits()
	nearby, err := repo.FindInRange(ctx, ts.Add(-limits.DuplicateWindow), ts.Add(limits.DuplicateWindow))
	if err != nil {
		return nil, err
	}

	var matches []*entity.Session
	for _, existing := range nearby {
		if math.Abs(existing.AmountML-amountML) > limits.DuplicateToleranceML {
			continue
		}
		if existing.Type != "" && sessionType != "" && existing.Type != sessionType {
			continue
		}
		matches = append(matches, existing)
	}
	return matches, nil
}

func candidateFromRecord(rec importer.Record) dto.ImportCandidate {
	return dto.ImportCandidate{
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
	}
}
