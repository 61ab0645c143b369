package dataset_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"timebank/internal/catalog"
	"timebank/internal/dataset"
	"timebank/internal/repos"
)

const oneListing = `[{"id":"9","name":"Harbor Light","region":"전라","location":"전라남도 여수시","price":260000,"rating":4.5,
"description":"바다 앞 카라반","image":"https://img.example.com/9.jpg","gallery":["https://img.example.com/9a.jpg"],
"amenities":["wifi","kayak"],"tags":["Sea"]}]`

func TestDecodeValid(t *testing.T) {
	got, err := dataset.Decode([]byte(oneListing))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].ID != "9" || got[0].Price != 260000 {
		t.Fatalf("unexpected listings: %+v", got)
	}
	if got[0].Amenities[1] != "kayak" {
		t.Fatalf("unknown amenity should survive decode: %v", got[0].Amenities)
	}
}

func TestDecodeIntegralFloatPrice(t *testing.T) {
	got, err := dataset.Decode([]byte(`[
{"id":"1","name":"a","region":"강원","price":350000.0,"rating":4.5},
{"id":"2","name":"b","region":"제주","price":2.8e5}]`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got[0].Price != 350000 || got[1].Price != 280000 || got[0].Rating != 4.5 {
		t.Fatalf("unexpected prices: %+v", got)
	}

	if _, err := dataset.Decode([]byte(`[{"id":"1","name":"a","region":"강원","price":350000.5}]`)); !errors.Is(err, dataset.ErrSchema) {
		t.Fatalf("fractional price should fail the schema, got %v", err)
	}
}

func TestDecodeRejects(t *testing.T) {
	cases := map[string]struct {
		body string
		want error
	}{
		"empty array":    {`[]`, dataset.ErrEmpty},
		"object":         {`{"id":"1"}`, dataset.ErrSchema},
		"negative price": {`[{"id":"1","name":"a","region":"강원","price":-5}]`, dataset.ErrSchema},
		"rating too big": {`[{"id":"1","name":"a","region":"강원","rating":7.5}]`, dataset.ErrSchema},
		"missing id":     {`[{"name":"a","region":"강원"}]`, dataset.ErrSchema},
		"price string":   {`[{"id":"1","name":"a","region":"강원","price":"10"}]`, dataset.ErrSchema},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := dataset.Decode([]byte(tc.body))
			if !errors.Is(err, tc.want) {
				t.Fatalf("want %v, got %v", tc.want, err)
			}
		})
	}

	if _, err := dataset.Decode([]byte(`<html>`)); err == nil {
		t.Fatal("want parse error for non-JSON body")
	}
}

func TestHTTPSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/uwuseon_campsites.json":
			if r.Header.Get("Cache-Control") != "no-store" {
				t.Errorf("want Cache-Control no-store, got %q", r.Header.Get("Cache-Control"))
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(oneListing))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	src := dataset.HTTPSource{URL: srv.URL + "/uwuseon_campsites.json", Timeout: 2 * time.Second}
	body, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if string(body) != oneListing {
		t.Fatalf("unexpected body: %s", body)
	}

	missing := dataset.HTTPSource{URL: srv.URL + "/nope.json", Timeout: 2 * time.Second}
	if _, err := missing.Fetch(context.Background()); !errors.Is(err, dataset.ErrStatus) {
		t.Fatalf("want ErrStatus for 404, got %v", err)
	}
}

func TestHTTPSourceCanceled(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	src := dataset.HTTPSource{URL: srv.URL, Timeout: 5 * time.Second}
	if _, err := src.Fetch(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sites.json")
	if err := os.WriteFile(path, []byte(oneListing), 0o644); err != nil {
		t.Fatal(err)
	}
	body, err := dataset.FileSource{Path: path}.Fetch(context.Background())
	if err != nil || string(body) != oneListing {
		t.Fatalf("fetch file: body=%s err=%v", body, err)
	}

	if _, err := (dataset.FileSource{Path: path + ".missing"}).Fetch(context.Background()); err == nil {
		t.Fatal("want error for missing file")
	}
}

func TestSQLiteSource(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	repo := repos.NewListingRepo(db)

	src := dataset.SQLiteSource{Repo: repo, DSN: ":memory:"}
	body, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := dataset.Decode(body); !errors.Is(err, dataset.ErrEmpty) {
		t.Fatalf("empty catalog should decode to ErrEmpty, got %v", err)
	}

	if err := repo.Import(catalog.Defaults()); err != nil {
		t.Fatal(err)
	}
	body, err = src.Fetch(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	got, err := dataset.Decode(body)
	if err != nil {
		t.Fatalf("decode catalog: %v", err)
	}
	if len(got) != 6 || got[5].Name != "Cloud 9 High" {
		t.Fatalf("unexpected catalog contents: %+v", got)
	}
}

func TestImportFileFeedsSQLiteSource(t *testing.T) {
	dir := t.TempDir()
	dsn := filepath.Join(dir, "catalog.db")

	n, err := dataset.ImportFile(context.Background(), "../../web/static/uwuseon_campsites.json", dsn)
	if err != nil || n != 8 {
		t.Fatalf("import: n=%d err=%v", n, err)
	}

	src, closeFn, err := dataset.Open("sqlite:"+dsn, time.Second)
	if err != nil {
		t.Fatal(err)
	}
	defer closeFn()
	body, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	got, err := dataset.Decode(body)
	if err != nil {
		t.Fatalf("decode imported catalog: %v", err)
	}
	if len(got) != 8 || got[0].ID != "1" || got[7].ID != "8" {
		t.Fatalf("catalog order or contents lost: %+v", got)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`[]`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := dataset.ImportFile(context.Background(), bad, dsn); !errors.Is(err, dataset.ErrEmpty) {
		t.Fatalf("want ErrEmpty, got %v", err)
	}
	body, _ = src.Fetch(context.Background())
	if got, _ := dataset.Decode(body); len(got) != 8 {
		t.Fatal("a rejected import must leave the catalog alone")
	}
}

func TestOpenPicksSource(t *testing.T) {
	cases := map[string]string{
		"https://example.com/uwuseon_campsites.json": "dataset.HTTPSource",
		"HTTP://example.com/x.json":                  "dataset.HTTPSource",
		"web/static/uwuseon_campsites.json":          "dataset.FileSource",
		"sqlite::memory:":                            "dataset.SQLiteSource",
	}
	for location, want := range cases {
		src, closeFn, err := dataset.Open(location, time.Second)
		if err != nil {
			t.Fatalf("%s: %v", location, err)
		}
		var got string
		switch src.(type) {
		case dataset.HTTPSource:
			got = "dataset.HTTPSource"
		case dataset.FileSource:
			got = "dataset.FileSource"
		case dataset.SQLiteSource:
			got = "dataset.SQLiteSource"
		}
		if got != want {
			t.Fatalf("%s: want %s, got %s", location, want, got)
		}
		if err := closeFn(); err != nil {
			t.Fatalf("%s: close: %v", location, err)
		}
	}
}
