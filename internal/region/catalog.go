// Package region holds the static per-region configuration: identifier
// and phone formats plus the sub-regions where projects may be located.
// Every region-specific literal in the service lives in this table.
package region

import (
	"errors"
	"fmt"
	"regexp"
)

var ErrUnknownRegion = errors.New("unknown region")

type SubRegion struct {
	Code string
	Name string
	// Synonyms are normalized (lower case, no diacritics) name variants
	// accepted when matching free-form addresses.
	Synonyms []string
}

type Config struct {
	Code             string
	Name             string
	RequiresTaxID    bool
	TaxIDLabel       string
	TaxIDPattern     *regexp.Regexp
	TaxIDPlaceholder string
	TaxIDMinLen      int
	TaxIDMaxLen      int
	PhonePattern     *regexp.Regexp
	PhonePlaceholder string
	PhoneMinLen      int
	PhoneMaxLen      int
	// Synonyms are normalized indicators that an address lies in this
	// region (official name plus known alias city/country names).
	Synonyms   []string
	SubRegions []SubRegion
}

func (c Config) HasSubRegions() bool { return len(c.SubRegions) > 0 }

func (c Config) SubRegion(code string) (SubRegion, bool) {
	for _, sr := range c.SubRegions {
		if sr.Code == code {
			return sr, true
		}
	}
	return SubRegion{}, false
}

func (c Config) SubRegionNames() []string {
	names := make([]string, 0, len(c.SubRegions))
	for _, sr := range c.SubRegions {
		names = append(names, sr.Name)
	}
	return names
}

var catalog = map[string]Config{
	"MX": {
		Code:             "MX",
		Name:             "México",
		RequiresTaxID:    true,
		TaxIDLabel:       "RFC",
		TaxIDPattern:     regexp.MustCompile(`^[A-ZÑ&]{3,4}\d{6}[A-Z0-9]{3}$`),
		TaxIDPlaceholder: "ABC123456DEF",
		TaxIDMinLen:      12,
		TaxIDMaxLen:      13,
		PhonePattern:     regexp.MustCompile(`^[0-9]{10}$`),
		PhonePlaceholder: "5512345678",
		PhoneMinLen:      10,
		PhoneMaxLen:      10,
		Synonyms:         []string{"mexico", "mx", "df", "distrito federal", "cdmx"},
		SubRegions: []SubRegion{
			{Code: "MX_COATZACOALCOS", Name: "Coatzacoalcos", Synonyms: []string{"coatzacoalcos"}},
			{Code: "MX_MINATITLAN", Name: "Minatitlán", Synonyms: []string{"minatitlan"}},
			{Code: "MX_AGUASCALIENTES", Name: "Aguascalientes", Synonyms: []string{"aguascalientes"}},
			{Code: "MX_GUERRERO", Name: "Guerrero", Synonyms: []string{"guerrero", "acapulco", "chilpancingo"}},
			{Code: "MX_LAZARO_CARDENAS", Name: "Lázaro Cárdenas", Synonyms: []string{"lazaro cardenas"}},
			{Code: "MX_CDMX", Name: "CDMX", Synonyms: []string{"ciudad de mexico", "cdmx", "df", "distrito federal", "mexico df"}},
		},
	},
	"HN": {
		Code:             "HN",
		Name:             "Honduras",
		RequiresTaxID:    false,
		TaxIDLabel:       "RTN",
		TaxIDPlaceholder: "12345678901234",
		TaxIDMinLen:      14,
		TaxIDMaxLen:      14,
		PhonePattern:     regexp.MustCompile(`^[0-9]{8}$`),
		PhonePlaceholder: "98765432",
		PhoneMinLen:      8,
		PhoneMaxLen:      8,
		Synonyms:         []string{"honduras", "tegucigalpa", "san pedro sula", "la ceiba", "comayagua"},
	},
	"SV": {
		Code:             "SV",
		Name:             "El Salvador",
		RequiresTaxID:    false,
		TaxIDLabel:       "NIT",
		TaxIDPlaceholder: "12345678901234",
		TaxIDMinLen:      14,
		TaxIDMaxLen:      14,
		PhonePattern:     regexp.MustCompile(`^[0-9]{8}$`),
		PhonePlaceholder: "98765432",
		PhoneMinLen:      8,
		PhoneMaxLen:      8,
		Synonyms:         []string{"el salvador", "salvador", "san salvador", "santa ana", "san miguel"},
	},
	"BZ": {
		Code:             "BZ",
		Name:             "Belize",
		RequiresTaxID:    false,
		TaxIDLabel:       "Tax ID",
		TaxIDPlaceholder: "123456789",
		TaxIDMinLen:      9,
		TaxIDMaxLen:      9,
		PhonePattern:     regexp.MustCompile(`^[0-9]{7}$`),
		PhonePlaceholder: "1234567",
		PhoneMinLen:      7,
		PhoneMaxLen:      7,
		Synonyms:         []string{"belize", "belmopan", "belice", "belize city"},
	},
}

func Get(code string) (Config, error) {
	cfg, ok := catalog[code]
	if !ok {
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownRegion, code)
	}
	return cfg, nil
}

// Codes returns the known region codes in a stable order.
func Codes() []string {
	return []string{"MX", "HN", "SV", "BZ"}
}

// SubRegionName resolves a sub-region code to its display name across all
// regions, falling back to the code itself.
func SubRegionName(code string) string {
	for _, cfg := range catalog {
		if sr, ok := cfg.SubRegion(code); ok {
			return sr.Name
		}
	}
	return code
}
