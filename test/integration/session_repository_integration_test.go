package integration

import (
	"context"
	"os"
	"testing"
	"time"

	"milktrack-be/internal/entity"
	"milktrack-be/internal/model"
	"milktrack-be/internal/repository/specification"
	"milktrack-be/internal/repository/unitofwork"
	"milktrack-be/pkg/database"
	"milktrack-be/pkg/importer"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("DB_CONNECTION_STRING not set, skipping integration test")
	}
	db, err := database.NewGormDBFromDSN(dsn)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Session{}))

	t.Cleanup(func() {
		db.Exec("DELETE FROM sessions")
	})
	return db
}

func testSession(ts time.Time, amountML float64, sessionType string) *entity.Session {
	return &entity.Session{
		Id:            uuid.New(),
		Timestamp:     ts,
		Type:          sessionType,
		AmountML:      amountML,
		AmountEntered: amountML,
		UnitEntered:   string(importer.UnitML),
		Source:        importer.SourceImported,
		Confidence:    1.0,
		CreatedAt:     time.Now(),
	}
}

func TestSessionRepositoryCreateAndFindInRange(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	factory := unitofwork.NewRepositoryFactory(db)
	repo := factory.NewUnitOfWork(ctx).SessionRepository()

	base := time.Date(2025, 2, 6, 10, 30, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, testSession(base, 120, "feeding")))
	require.NoError(t, repo.Create(ctx, testSession(base.Add(30*time.Minute), 90, "pumping")))
	require.NoError(t, repo.Create(ctx, testSession(base.Add(2*time.Hour), 100, "feeding")))

	// Range bounds are inclusive on both ends.
	found, err := repo.FindInRange(ctx, base, base.Add(30*time.Minute))
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, 120.0, found[0].AmountML, "ordered oldest first")
	assert.Equal(t, 90.0, found[1].AmountML)
}

func TestSessionRepositorySpecifications(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	factory := unitofwork.NewRepositoryFactory(db)
	repo := factory.NewUnitOfWork(ctx).SessionRepository()

	base := time.Date(2025, 2, 6, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(ctx, testSession(base.Add(time.Duration(i)*time.Hour), 100, "feeding")))
	}

	require.NoError(t, repo.Create(ctx, testSession(base.Add(6*time.Hour), 90, "pumping")))

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(6), total)

	pumping, err := repo.Count(ctx, specification.ByType{Type: "pumping"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), pumping)

	page, err := repo.FindAll(ctx,
		specification.OrderBy{Field: "timestamp", Desc: true},
		specification.Pagination{Limit: 2, Offset: 0},
	)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.True(t, page[0].Timestamp.After(page[1].Timestamp))
}

func TestUnitOfWorkRollbackDiscardsBatch(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	factory := unitofwork.NewRepositoryFactory(db)

	uow := factory.NewUnitOfWork(ctx)
	require.NoError(t, uow.Begin(ctx))
	repo := uow.SessionRepository()

	base := time.Date(2025, 2, 6, 10, 30, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, testSession(base, 120, "feeding")))
	require.NoError(t, uow.Rollback())

	count, err := factory.NewUnitOfWork(ctx).SessionRepository().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestUnitOfWorkCommitPersistsBatch(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	factory := unitofwork.NewRepositoryFactory(db)

	uow := factory.NewUnitOfWork(ctx)
	require.NoError(t, uow.Begin(ctx))
	repo := uow.SessionRepository()

	base := time.Date(2025, 2, 6, 10, 30, 0, 0, time.UTC)
	require.NoError(t, repo.CreateAll(ctx, []*entity.Session{
		testSession(base, 120, "feeding"),
		testSession(base.Add(time.Hour), 90, "pumping"),
	}))
	require.NoError(t, uow.Commit())

	count, err := factory.NewUnitOfWork(ctx).SessionRepository().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
