package store

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"timebank/internal/catalog"
	"timebank/internal/dataset"
	"timebank/internal/domain"
)

type State int

const (
	StateDefault State = iota
	StateLoading
	StateLoaded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateDefault:
		return "default"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateFailed:
		return "failed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Result describes the outcome of the dataset load. Reason is set only
// when State is StateFailed.
type Result struct {
	State  State
	Source string
	Count  int
	Reason error
	At     time.Time
}

// Store holds the listing collection. It starts with the normalized
// defaults and may be replaced once by Load.
type Store struct {
	listings atomic.Pointer[[]domain.Listing]
	result   atomic.Pointer[Result]
	once     sync.Once
	first    Result
	now      func() time.Time
}

func New() *Store {
	return newStore(catalog.Defaults())
}

// NewWith seeds the store with listings instead of the built-in defaults.
func NewWith(listings []domain.Listing) *Store {
	return newStore(listings)
}

func newStore(seed []domain.Listing) *Store {
	s := &Store{now: time.Now}
	initial := catalog.NormalizeAll(seed)
	s.listings.Store(&initial)
	s.result.Store(&Result{State: StateDefault, Count: len(initial), At: s.now()})
	return s
}

// Snapshot returns the last-known-good collection. Callers must not
// modify the returned listings.
func (s *Store) Snapshot() []domain.Listing {
	return *s.listings.Load()
}

// Status reports the current lifecycle state.
func (s *Store) Status() Result {
	return *s.result.Load()
}

// Load fetches the dataset from src and, if it holds at least one valid
// listing, replaces the collection. Only the first call does any work;
// later calls return the first result. Failures keep the prior collection
// and are returned, never raised. If ctx is done by the time the fetch
// settles, the result is discarded.
func (s *Store) Load(ctx context.Context, src dataset.Source) Result {
	s.once.Do(func() {
		s.first = s.load(ctx, src)
		s.result.Store(&s.first)
	})
	return s.first
}

func (s *Store) load(ctx context.Context, src dataset.Source) (res Result) {
	name := src.Name()
	s.result.Store(&Result{State: StateLoading, Source: name, Count: len(s.Snapshot()), At: s.now()})

	fail := func(err error) Result {
		return Result{State: StateFailed, Source: name, Count: len(s.Snapshot()), Reason: err, At: s.now()}
	}
	defer func() {
		if r := recover(); r != nil {
			res = fail(fmt.Errorf("store: dataset source panicked: %v", r))
		}
	}()

	body, err := src.Fetch(ctx)
	if err != nil {
		return fail(err)
	}
	listings, err := dataset.Decode(body)
	if err != nil {
		return fail(err)
	}
	if err := ctx.Err(); err != nil {
		return fail(fmt.Errorf("store: load discarded: %w", err))
	}

	next := catalog.NormalizeAll(listings)
	s.listings.Store(&next)
	return Result{State: StateLoaded, Source: name, Count: len(next), At: s.now()}
}
