package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldsOf(errs FieldErrors) []string {
	fields := make([]string, len(errs))
	for i, fe := range errs {
		fields[i] = fe.Field
	}
	return fields
}

func TestValidateProjectAllFieldsReported(t *testing.T) {
	// Every field is validated independently: one broken field must not
	// hide the others.
	errs := ValidateProject(ProjectSubmission{
		Name:         "ab",
		Location:     "now",
		SquareMeters: 0,
		Liters:       -1,
	}, strPtr("HN"), nil)

	fields := fieldsOf(errs)
	assert.ElementsMatch(t, []string{"name", "location", "square_meters", "liters"}, fields)
}

func TestValidateProjectAccepted(t *testing.T) {
	sub := ProjectSubmission{
		Name:         "Casa Familiar",
		Location:     "Tegucigalpa, Honduras",
		SquareMeters: 120,
		Liters:       10,
	}
	assert.Empty(t, ValidateProject(sub, strPtr("HN"), nil))

	// Re-running on the unchanged accepted record yields the same decision.
	assert.Empty(t, ValidateProject(sub, strPtr("HN"), nil))
}

func TestValidateProjectLocationReasonSurfaced(t *testing.T) {
	errs := ValidateProject(ProjectSubmission{
		Name:         "Fachada Comercial",
		Location:     "Av. Reforma 123, Monterrey",
		SquareMeters: 250,
		Liters:       20,
	}, strPtr("MX"), strPtr("MX_CDMX"))

	require.Len(t, errs, 1)
	assert.Equal(t, "location", errs[0].Field)
	assert.Equal(t, string(LocationWrongSubRegion), errs[0].Reason)
	assert.Equal(t, []string{"CDMX"}, errs[0].Expected)
}

func TestValidateRegistration(t *testing.T) {
	base := Registration{
		Name:       "Juan Pérez",
		Email:      "juan@example.com",
		Phone:      "5512345678",
		TaxID:      "ABC123456DEF",
		Password:   "secret1",
		RegionCode: "MX",
	}

	t.Run("valid", func(t *testing.T) {
		assert.Empty(t, ValidateRegistration(base))
	})

	t.Run("bad email", func(t *testing.T) {
		reg := base
		reg.Email = "not-an-email"
		errs := ValidateRegistration(reg)
		require.Len(t, errs, 1)
		assert.Equal(t, "email", errs[0].Field)
		assert.Equal(t, ReasonInvalidEmail, errs[0].Reason)
	})

	t.Run("phone length per region", func(t *testing.T) {
		reg := base
		reg.Phone = "12345678" // HN length, not MX
		errs := ValidateRegistration(reg)
		require.Len(t, errs, 1)
		assert.Equal(t, "phone", errs[0].Field)
	})

	t.Run("tax id required in MX", func(t *testing.T) {
		reg := base
		reg.TaxID = ""
		errs := ValidateRegistration(reg)
		require.Len(t, errs, 1)
		assert.Equal(t, "tax_id", errs[0].Field)
		assert.Equal(t, ReasonRequired, errs[0].Reason)
	})

	t.Run("tax id format in MX", func(t *testing.T) {
		reg := base
		reg.TaxID = "NOT-A-RFC-123"
		errs := ValidateRegistration(reg)
		require.Len(t, errs, 1)
		assert.Equal(t, ReasonInvalidTaxID, errs[0].Reason)
	})

	t.Run("tax id lower case is normalized", func(t *testing.T) {
		reg := base
		reg.TaxID = "abc123456def"
		assert.Empty(t, ValidateRegistration(reg))
	})

	t.Run("tax id optional in HN", func(t *testing.T) {
		reg := base
		reg.RegionCode = "HN"
		reg.Phone = "98765432"
		reg.TaxID = ""
		assert.Empty(t, ValidateRegistration(reg))
	})

	t.Run("optional tax id still bounded", func(t *testing.T) {
		reg := base
		reg.RegionCode = "HN"
		reg.Phone = "98765432"
		reg.TaxID = "123456789012345678901"
		errs := ValidateRegistration(reg)
		require.Len(t, errs, 1)
		assert.Equal(t, ReasonTooLong, errs[0].Reason)
	})

	t.Run("unknown region", func(t *testing.T) {
		reg := base
		reg.RegionCode = "AR"
		errs := ValidateRegistration(reg)
		require.Len(t, errs, 1)
		assert.Equal(t, "region_code", errs[0].Field)
	})

	t.Run("unknown sub region", func(t *testing.T) {
		reg := base
		reg.SubRegionCode = "MX_MONTERREY"
		errs := ValidateRegistration(reg)
		require.Len(t, errs, 1)
		assert.Equal(t, "sub_region_code", errs[0].Field)
	})

	t.Run("short password", func(t *testing.T) {
		reg := base
		reg.Password = "abc"
		errs := ValidateRegistration(reg)
		require.Len(t, errs, 1)
		assert.Equal(t, "password", errs[0].Field)
	})
}

func TestValidateProfile(t *testing.T) {
	t.Run("legacy contractor without region skips format checks", func(t *testing.T) {
		errs := ValidateProfile("María García", "maria@example.com", "whatever", "", nil)
		assert.Empty(t, errs)
	})

	t.Run("region formats still apply", func(t *testing.T) {
		errs := ValidateProfile("María García", "maria@example.com", "123", "ABC123456DEF", strPtr("MX"))
		require.Len(t, errs, 1)
		assert.Equal(t, "phone", errs[0].Field)
	})
}
