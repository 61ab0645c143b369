package dataset

import (
	"context"
	"fmt"

	"timebank/internal/repos"
)

// ImportFile validates the dataset JSON at path and writes it into the
// sqlite catalog at dsn, replacing its contents. The catalog can then be
// served with DATASET_SOURCE=sqlite:<dsn>. It returns the listing count.
func ImportFile(ctx context.Context, path, dsn string) (int, error) {
	body, err := FileSource{Path: path}.Fetch(ctx)
	if err != nil {
		return 0, err
	}
	listings, err := Decode(body)
	if err != nil {
		return 0, fmt.Errorf("dataset: import %s: %w", path, err)
	}

	db, err := repos.OpenDB(dsn)
	if err != nil {
		return 0, fmt.Errorf("dataset: open %s: %w", dsn, err)
	}
	defer db.Close()

	if err := repos.NewListingRepo(db).Import(listings); err != nil {
		return 0, fmt.Errorf("dataset: import into %s: %w", dsn, err)
	}
	return len(listings), nil
}
