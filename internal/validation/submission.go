package validation

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/nurpe/paintraffle/internal/region"
)

const (
	minNameLength     = 3
	minPasswordLength = 6
)

// Field reason codes consumed verbatim by the presentation layer.
const (
	ReasonRequired     = "required"
	ReasonTooShort     = "too_short"
	ReasonTooLong      = "too_long"
	ReasonNotPositive  = "not_positive"
	ReasonInvalidEmail = "invalid_email"
	ReasonInvalidPhone = "invalid_phone"
	ReasonInvalidTaxID = "invalid_tax_id"
)

type FieldError struct {
	Field    string   `json:"field"`
	Reason   string   `json:"reason"`
	Expected []string `json:"expected,omitempty"`
}

// FieldErrors collects every failed field of a submission. Fields are
// validated independently so the caller can show all problems at once.
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	fields := make([]string, len(e))
	for i, fe := range e {
		fields[i] = fmt.Sprintf("%s (%s)", fe.Field, fe.Reason)
	}
	return "invalid fields: " + strings.Join(fields, ", ")
}

func (e FieldErrors) OrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

type ProjectSubmission struct {
	Name         string
	Location     string
	SquareMeters float64
	Liters       int
	PaintType    string
	Description  string
}

// ValidateProject checks a project submission within the contractor's
// region scope and returns every failing field.
func ValidateProject(sub ProjectSubmission, regionCode, subRegionCode *string) FieldErrors {
	var errs FieldErrors

	if len([]rune(strings.TrimSpace(sub.Name))) < minNameLength {
		errs = append(errs, FieldError{Field: "name", Reason: ReasonTooShort})
	}
	if loc := ValidateLocation(sub.Location, regionCode, subRegionCode); !loc.Valid {
		errs = append(errs, FieldError{Field: "location", Reason: string(loc.Reason), Expected: loc.Expected})
	}
	if sub.SquareMeters <= 0 {
		errs = append(errs, FieldError{Field: "square_meters", Reason: ReasonNotPositive})
	}
	if sub.Liters <= 0 {
		errs = append(errs, FieldError{Field: "liters", Reason: ReasonNotPositive})
	}
	return errs
}

type Registration struct {
	Name          string
	Email         string
	Phone         string
	TaxID         string
	Password      string
	RegionCode    string
	SubRegionCode string
}

// ValidateRegistration checks contractor identity fields against the
// chosen region's formats. The tax identifier is mandatory only where
// the region requires it; elsewhere it is optional and only bounded in
// length.
func ValidateRegistration(reg Registration) FieldErrors {
	errs := nameAndEmailErrors(reg.Name, reg.Email)

	if len(reg.Password) < minPasswordLength {
		errs = append(errs, FieldError{Field: "password", Reason: ReasonTooShort})
	}

	cfg, err := region.Get(reg.RegionCode)
	if err != nil {
		errs = append(errs, FieldError{Field: "region_code", Reason: ReasonRequired})
		return errs
	}
	if cfg.HasSubRegions() && reg.SubRegionCode != "" {
		if _, ok := cfg.SubRegion(reg.SubRegionCode); !ok {
			errs = append(errs, FieldError{Field: "sub_region_code", Reason: ReasonRequired})
		}
	}
	return append(errs, identityFieldErrors(cfg, reg.Phone, reg.TaxID)...)
}

// ValidateProfile checks the fields a contractor may edit after
// registration. The region is the stored one and is not revalidated;
// contractors without a captured region keep the permissive legacy
// treatment and get no phone or identifier format checks.
func ValidateProfile(name, email, phone, taxID string, regionCode *string) FieldErrors {
	errs := nameAndEmailErrors(name, email)

	if regionCode == nil || *regionCode == "" {
		return errs
	}
	cfg, err := region.Get(*regionCode)
	if err != nil {
		return errs
	}
	return append(errs, identityFieldErrors(cfg, phone, taxID)...)
}

func nameAndEmailErrors(name, email string) FieldErrors {
	var errs FieldErrors
	if len([]rune(strings.TrimSpace(name))) < minNameLength {
		errs = append(errs, FieldError{Field: "name", Reason: ReasonTooShort})
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(email)); err != nil {
		errs = append(errs, FieldError{Field: "email", Reason: ReasonInvalidEmail})
	}
	return errs
}

func identityFieldErrors(cfg region.Config, phone, taxID string) FieldErrors {
	var errs FieldErrors

	trimmed := strings.TrimSpace(phone)
	if len(trimmed) < cfg.PhoneMinLen || len(trimmed) > cfg.PhoneMaxLen || !cfg.PhonePattern.MatchString(trimmed) {
		errs = append(errs, FieldError{Field: "phone", Reason: ReasonInvalidPhone})
	}

	normalized := strings.ToUpper(strings.TrimSpace(taxID))
	switch {
	case cfg.RequiresTaxID:
		if normalized == "" {
			errs = append(errs, FieldError{Field: "tax_id", Reason: ReasonRequired})
		} else if len(normalized) < cfg.TaxIDMinLen || len(normalized) > cfg.TaxIDMaxLen ||
			(cfg.TaxIDPattern != nil && !cfg.TaxIDPattern.MatchString(normalized)) {
			errs = append(errs, FieldError{Field: "tax_id", Reason: ReasonInvalidTaxID})
		}
	case normalized != "":
		if len(normalized) > cfg.TaxIDMaxLen {
			errs = append(errs, FieldError{Field: "tax_id", Reason: ReasonTooLong})
		}
	}
	return errs
}
