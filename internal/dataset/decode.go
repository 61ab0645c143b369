package dataset

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"timebank/internal/domain"
)

var (
	ErrEmpty  = errors.New("dataset: empty listing array")
	ErrSchema = errors.New("dataset: payload does not match listing schema")
	ErrStatus = errors.New("dataset: unexpected status")
)

//go:embed listings.schema.json
var listingsSchema string

var schema = jsonschema.MustCompileString("listings.schema.json", listingsSchema)

// Decode validates body against the listing schema and unmarshals it.
// An empty array yields ErrEmpty. Integral prices written with a fraction
// part (350000.0) are accepted as integers.
func Decode(body []byte) ([]domain.Listing, error) {
	var raw any
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("dataset: parse: %w", err)
	}
	if err := schema.Validate(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchema, err)
	}

	items, _ := raw.([]any)
	for _, it := range items {
		if obj, ok := it.(map[string]any); ok {
			if n, ok := obj["price"].(json.Number); ok {
				obj["price"] = integral(n)
			}
		}
	}
	canonical, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("dataset: decode listings: %w", err)
	}

	var out []domain.Listing
	if err := json.Unmarshal(canonical, &out); err != nil {
		return nil, fmt.Errorf("dataset: decode listings: %w", err)
	}
	if len(out) == 0 {
		return nil, ErrEmpty
	}
	return out, nil
}

// integral rewrites a whole-valued number such as 350000.0 or 3.5e5 as a
// plain integer literal. Anything else is returned unchanged.
func integral(n json.Number) json.Number {
	if _, err := n.Int64(); err == nil {
		return n
	}
	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt64/2 {
		return n
	}
	return json.Number(strconv.FormatInt(int64(f), 10))
}
