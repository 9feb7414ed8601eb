package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestNormalizeLocation(t *testing.T) {
	assert.Equal(t, "minatitlan, veracruz", NormalizeLocation("Minatitlán, Veracruz"))
	assert.Equal(t, "lazaro cardenas", NormalizeLocation("Lázaro Cárdenas"))
	assert.Equal(t, "mexico", NormalizeLocation("MÉXICO"))
}

func TestValidateLocationTooShort(t *testing.T) {
	result := ValidateLocation("CDMX", strPtr("MX"), strPtr("MX_CDMX"))
	assert.False(t, result.Valid)
	assert.Equal(t, LocationTooShort, result.Reason)
}

func TestValidateLocationUnscopedContractor(t *testing.T) {
	// Accounts created before region capture have no region and stay
	// permissive: anything non-trivial passes.
	for _, regionCode := range []*string{nil, strPtr("")} {
		result := ValidateLocation("Managua, Nicaragua", regionCode, nil)
		assert.True(t, result.Valid)
	}
}

func TestValidateLocationUnknownRegionIsPermissive(t *testing.T) {
	result := ValidateLocation("Anywhere at all", strPtr("ZZ"), nil)
	assert.True(t, result.Valid)
}

func TestValidateLocationPinnedSubRegion(t *testing.T) {
	tests := []struct {
		name     string
		location string
		valid    bool
	}{
		{"matching sub-region", "Av. Reforma 123, CDMX", true},
		{"matching with accents", "Col. Juárez, Ciudad de México", true},
		{"wrong city", "Av. Reforma 123, Monterrey", false},
		{"region name only", "Calle 5, México", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateLocation(tt.location, strPtr("MX"), strPtr("MX_CDMX"))
			assert.Equal(t, tt.valid, result.Valid)
			if !tt.valid {
				assert.Equal(t, LocationWrongSubRegion, result.Reason)
				assert.Equal(t, []string{"CDMX"}, result.Expected)
			}
		})
	}
}

func TestValidateLocationUnpinnedContractorInSubRegionedRegion(t *testing.T) {
	// Without an assigned sub-region, any allowed city makes the
	// location valid, but the region name alone does not.
	valid := ValidateLocation("Aguascalientes, México", strPtr("MX"), nil)
	assert.True(t, valid.Valid)

	acapulco := ValidateLocation("Acapulco, México", strPtr("MX"), nil)
	assert.True(t, acapulco.Valid, "sub-region alias city should match")

	regionOnly := ValidateLocation("Calle Principal, México", strPtr("MX"), nil)
	assert.False(t, regionOnly.Valid)
	assert.Equal(t, LocationWrongRegionCities, regionOnly.Reason)
	assert.Contains(t, regionOnly.Expected, "Coatzacoalcos")
	assert.Contains(t, regionOnly.Expected, "CDMX")
}

func TestValidateLocationRegionWithoutSubRegions(t *testing.T) {
	valid := ValidateLocation("Tegucigalpa, Honduras", strPtr("HN"), nil)
	assert.True(t, valid.Valid)

	alias := ValidateLocation("Barrio X, San Pedro Sula", strPtr("HN"), nil)
	assert.True(t, alias.Valid)

	invalid := ValidateLocation("Managua, Nicaragua", strPtr("HN"), nil)
	assert.False(t, invalid.Valid)
	assert.Equal(t, LocationCountryOnly, invalid.Reason)
	assert.Equal(t, []string{"Honduras"}, invalid.Expected)
}

func TestValidateLocationLooseSubstringMatching(t *testing.T) {
	// Matching is deliberately loose: a string containing a disallowed
	// place name still passes when an allowed synonym also appears.
	result := ValidateLocation("Carretera Managua - Tegucigalpa, Honduras", strPtr("HN"), nil)
	assert.True(t, result.Valid)
}
