package repos_test

import (
	"reflect"
	"testing"

	"timebank/internal/catalog"
	"timebank/internal/repos"
)

func TestListingRepoImportAndList(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	repo := repos.NewListingRepo(db)
	want := catalog.Defaults()
	if err := repo.Import(want); err != nil {
		t.Fatalf("import: %v", err)
	}

	got, err := repo.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch\nwant=%+v\ngot=%+v", want, got)
	}
}

func TestListingRepoRejectsNegativePrice(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	bad := catalog.Defaults()[:1]
	bad[0].Price = -1
	if err := repos.NewListingRepo(db).Import(bad); err == nil {
		t.Fatal("want CHECK constraint failure for negative price")
	}
}

func TestListingRepoBadJSONColumn(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(`INSERT INTO listings(id,name,region,price,gallery_json) VALUES('x','X','강원',1,'not json')`); err != nil {
		t.Fatal(err)
	}
	if _, err := repos.NewListingRepo(db).List(); err == nil {
		t.Fatal("want decode error for malformed gallery_json")
	}
}
