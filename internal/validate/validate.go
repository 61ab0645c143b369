package validate

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"timebank/internal/domain"
)

var reID = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// Region validates a region filter value. Blank values and "all" select
// every listing. Any other printable value up to 32 characters is returned
// byte for byte, surrounding spaces included, so it is matched exactly.
func Region(s string) (string, bool) {
	if alias := strings.TrimSpace(s); alias == "" || strings.EqualFold(alias, "all") {
		return domain.RegionAll, true
	}
	if utf8.RuneCountInString(s) > 32 || !utf8.ValidString(s) {
		return "", false
	}
	for _, r := range s {
		if unicode.IsControl(r) || r == '<' || r == '>' {
			return "", false
		}
	}
	return s, true
}

// ID validates a listing identifier.
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}
