package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"timebank/internal/repos"
)

// Source yields the raw dataset payload, a JSON array of listings.
type Source interface {
	Fetch(ctx context.Context) ([]byte, error)
	Name() string
}

// DefaultHTTPTimeout bounds an HTTPSource fetch when Timeout is unset.
const DefaultHTTPTimeout = 10 * time.Second

// HTTPSource fetches the dataset from a static-file URL. Responses are never cached.
type HTTPSource struct {
	URL     string
	Timeout time.Duration
}

func (s HTTPSource) Name() string { return s.URL }

// timeout is Timeout (or DefaultHTTPTimeout), cut short by ctx's deadline so
// the request goroutine never outlives the caller by much.
func (s HTTPSource) timeout(ctx context.Context) time.Duration {
	d := s.Timeout
	if d <= 0 {
		d = DefaultHTTPTimeout
	}
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left < d {
			d = max(left, time.Millisecond)
		}
	}
	return d
}

func (s HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	type result struct {
		code int
		body []byte
		err  error
	}
	timeout := s.timeout(ctx)
	done := make(chan result, 1)
	go func() {
		a := fiber.Get(s.URL)
		a.Timeout(timeout)
		a.Set(fiber.HeaderCacheControl, "no-store")
		a.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)
		code, body, errs := a.Bytes()
		if len(errs) > 0 {
			done <- result{err: fmt.Errorf("dataset: fetch %s: %w", s.URL, errs[0])}
			return
		}
		done <- result{code: code, body: body}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-done:
		if r.err != nil {
			return nil, r.err
		}
		if r.code < 200 || r.code > 299 {
			return nil, fmt.Errorf("%w %d from %s", ErrStatus, r.code, s.URL)
		}
		return r.body, nil
	}
}

// FileSource reads the dataset from a local JSON file.
type FileSource struct {
	Path string
}

func (s FileSource) Name() string { return s.Path }

func (s FileSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("dataset: read %s: %w", s.Path, err)
	}
	return b, nil
}

// SQLiteSource reads a sqlite listing catalog and presents it in the
// dataset JSON shape so it goes through the same validation.
type SQLiteSource struct {
	Repo *repos.ListingRepo
	DSN  string
}

func (s SQLiteSource) Name() string { return "sqlite:" + s.DSN }

func (s SQLiteSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	listings, err := s.Repo.List()
	if err != nil {
		return nil, fmt.Errorf("dataset: list %s: %w", s.DSN, err)
	}
	return json.Marshal(listings)
}

// Open picks a Source from location: http(s) URLs are fetched, "sqlite:<dsn>"
// opens a catalog database, anything else is a file path. The returned
// close func releases whatever Open acquired.
func Open(location string, timeout time.Duration) (Source, func() error, error) {
	noop := func() error { return nil }
	lower := strings.ToLower(location)
	switch {
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		return HTTPSource{URL: location, Timeout: timeout}, noop, nil
	case strings.HasPrefix(lower, "sqlite:"):
		dsn := location[len("sqlite:"):]
		db, err := repos.OpenDB(dsn)
		if err != nil {
			return nil, noop, fmt.Errorf("dataset: open %s: %w", dsn, err)
		}
		return SQLiteSource{Repo: repos.NewListingRepo(db), DSN: dsn}, db.Close, nil
	default:
		return FileSource{Path: location}, noop, nil
	}
}
