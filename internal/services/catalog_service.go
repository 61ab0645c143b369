package services

import (
	"context"

	"github.com/google/uuid"

	"timebank/internal/catalog"
	"timebank/internal/dataset"
	"timebank/internal/domain"
	applog "timebank/internal/log"
	"timebank/internal/store"
)

type CatalogService struct {
	Store *store.Store
}

func NewCatalogService(s *store.Store) *CatalogService {
	return &CatalogService{Store: s}
}

// Visible returns the listings for region from the current collection.
func (s *CatalogService) Visible(region string) []domain.Listing {
	return catalog.Visible(s.Store.Snapshot(), region)
}

// Get returns a copy of the listing with id.
func (s *CatalogService) Get(id string) (domain.Listing, bool) {
	l, ok := catalog.Find(s.Store.Snapshot(), id)
	if !ok {
		return domain.Listing{}, false
	}
	return l.Clone(), true
}

func (s *CatalogService) Regions() []string {
	out := make([]string, len(domain.Regions))
	copy(out, domain.Regions)
	return out
}

func (s *CatalogService) Status() store.Result {
	return s.Store.Status()
}

// LoadDataset runs the store's one-shot load from src and records the
// outcome. A successful replacement of the catalog is an audit event.
func (s *CatalogService) LoadDataset(ctx context.Context, src dataset.Source) store.Result {
	attempt := uuid.NewString()
	applog.Info(nil, "store.load.start", map[string]any{"attempt": attempt, "source": src.Name()})
	res := s.Store.Load(ctx, src)
	fields := map[string]any{"attempt": attempt, "source": res.Source, "state": res.State.String(), "count": res.Count}
	if res.State == store.StateFailed {
		applog.Warn(nil, "store.load.failed", res.Reason, fields)
		return res
	}
	applog.Audit(nil, "store.load.done", fields)
	return res
}
