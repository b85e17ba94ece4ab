package memory

import (
	"time"

	"milktrack-be/pkg/importer"

	"github.com/patrickmn/go-cache"
)

// PendingImport is a parsed batch awaiting the commit call. It lives only in
// memory: abandoning the review step just lets the entry expire.
type PendingImport struct {
	Id        string
	Filename  string
	Records   []importer.Record
	CreatedAt time.Time
}

type PendingImportRepository struct {
	cache *cache.Cache
}

func NewPendingImportRepository(ttl time.Duration) *PendingImportRepository {
	c := cache.New(ttl, 10*time.Minute)
	return &PendingImportRepository{
		cache: c,
	}
}

func (r *PendingImportRepository) Save(batch *PendingImport) {
	r.cache.Set(batch.Id, batch, cache.DefaultExpiration)
}

func (r *PendingImportRepository) Get(id string) (*PendingImport, bool) {
	if x, found := r.cache.Get(id); found {
		return x.(*PendingImport), true
	}
	return nil, false
}

func (r *PendingImportRepository) Delete(id string) {
	r.cache.Delete(id)
}
