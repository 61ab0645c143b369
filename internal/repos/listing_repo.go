package repos

import (
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"

	"timebank/internal/domain"
)

type listingRow struct {
	ID            string  `db:"id"`
	Position      int     `db:"position"`
	Name          string  `db:"name"`
	Region        string  `db:"region"`
	Location      string  `db:"location"`
	Price         int     `db:"price"`
	Rating        float64 `db:"rating"`
	Description   string  `db:"description"`
	Image         string  `db:"image"`
	GalleryJSON   string  `db:"gallery_json"`
	AmenitiesJSON string  `db:"amenities_json"`
	TagsJSON      string  `db:"tags_json"`
}

func (r listingRow) listing() (domain.Listing, error) {
	l := domain.Listing{
		ID:          r.ID,
		Name:        r.Name,
		Region:      r.Region,
		Location:    r.Location,
		Price:       r.Price,
		Rating:      r.Rating,
		Description: r.Description,
		Image:       r.Image,
	}
	for _, f := range []struct {
		col string
		raw string
		dst *[]string
	}{
		{"gallery_json", r.GalleryJSON, &l.Gallery},
		{"amenities_json", r.AmenitiesJSON, &l.Amenities},
		{"tags_json", r.TagsJSON, &l.Tags},
	} {
		if f.raw == "" {
			*f.dst = []string{}
			continue
		}
		if err := json.Unmarshal([]byte(f.raw), f.dst); err != nil {
			return domain.Listing{}, fmt.Errorf("listing %s: decode %s: %w", r.ID, f.col, err)
		}
	}
	return l, nil
}

type ListingRepo struct{ db *sqlx.DB }

func NewListingRepo(db *sqlx.DB) *ListingRepo { return &ListingRepo{db: db} }

// List returns the whole catalog in display order.
func (r *ListingRepo) List() ([]domain.Listing, error) {
	var rows []listingRow
	err := r.db.Select(&rows, `
  SELECT
    id, position, name, region, location, price, rating, description, image,
    gallery_json, amenities_json, tags_json
  FROM listings
  ORDER BY position, id
`)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Listing, 0, len(rows))
	for _, row := range rows {
		l, err := row.listing()
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, nil
}

// Import replaces the catalog contents with listings, keeping their order.
func (r *ListingRepo) Import(listings []domain.Listing) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM listings`); err != nil {
		return err
	}
	for i, l := range listings {
		gallery, _ := json.Marshal(nonNil(l.Gallery))
		amenities, _ := json.Marshal(nonNil(l.Amenities))
		tags, _ := json.Marshal(nonNil(l.Tags))
		if _, err := tx.Exec(`
			INSERT INTO listings(
				id, position, name, region, location, price, rating, description, image,
				gallery_json, amenities_json, tags_json
			) VALUES(?,?,?,?,?,?,?,?,?,?,?,?)
		`, l.ID, i, l.Name, l.Region, l.Location, l.Price, l.Rating, l.Description, l.Image,
			string(gallery), string(amenities), string(tags)); err != nil {
			return fmt.Errorf("import listing %s: %w", l.ID, err)
		}
	}
	return tx.Commit()
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
