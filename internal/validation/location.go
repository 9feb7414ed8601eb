package validation

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/nurpe/paintraffle/internal/region"
)

const minLocationLength = 5

type LocationReason string

const (
	LocationTooShort          LocationReason = "location_too_short"
	LocationWrongSubRegion    LocationReason = "location_wrong_sub_region"
	LocationWrongRegionCities LocationReason = "location_wrong_region_cities"
	LocationCountryOnly       LocationReason = "location_country_only"
)

// LocationResult reports whether a free-form address is acceptable for a
// contractor's region. Expected carries the names the caller should show:
// the required sub-region, the list of allowed cities, or the region name.
type LocationResult struct {
	Valid    bool
	Reason   LocationReason
	Expected []string
}

func locationOK() LocationResult { return LocationResult{Valid: true} }

func locationInvalid(reason LocationReason, expected ...string) LocationResult {
	return LocationResult{Reason: reason, Expected: expected}
}

var normalizer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeLocation lower-cases the input and strips diacritical marks so
// that matching tolerates free-form address entry.
func NormalizeLocation(s string) string {
	out, _, err := transform.String(normalizer, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}

// ValidateLocation checks a free-text location against the contractor's
// region and optional sub-region. Matching is substring containment on
// normalized text, deliberately loose: the first matching synonym wins and
// no further disambiguation is attempted.
func ValidateLocation(location string, regionCode, subRegionCode *string) LocationResult {
	if len([]rune(strings.TrimSpace(location))) < minLocationLength {
		return locationInvalid(LocationTooShort)
	}

	// Contractors created before region capture existed have no region.
	// They are deliberately unscoped: any non-empty location passes.
	if regionCode == nil || *regionCode == "" {
		return locationOK()
	}
	cfg, err := region.Get(*regionCode)
	if err != nil {
		return locationOK()
	}

	text := NormalizeLocation(location)
	regionHit := containsAny(text, cfg.Synonyms)

	if !cfg.HasSubRegions() {
		if regionHit {
			return locationOK()
		}
		return locationInvalid(LocationCountryOnly, cfg.Name)
	}

	if subRegionCode != nil && *subRegionCode != "" {
		if sub, ok := cfg.SubRegion(*subRegionCode); ok {
			if regionHit && containsAny(text, sub.Synonyms) {
				return locationOK()
			}
			return locationInvalid(LocationWrongSubRegion, sub.Name)
		}
	}

	if regionHit {
		for _, sub := range cfg.SubRegions {
			if containsAny(text, sub.Synonyms) {
				return locationOK()
			}
		}
	}
	return locationInvalid(LocationWrongRegionCities, cfg.SubRegionNames()...)
}

func containsAny(text string, synonyms []string) bool {
	for _, syn := range synonyms {
		if strings.Contains(text, syn) {
			return true
		}
	}
	return false
}
