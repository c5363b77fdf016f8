package enquiry

import "regexp"

// Identity card schemes accepted as the single-document proof path.
type IdentityCardType string

const (
	CardNone     IdentityCardType = ""
	CardABHA     IdentityCardType = "ABHA"
	CardSchemeID IdentityCardType = "SCHEME_ID"
)

var (
	reABHA       = regexp.MustCompile(`^[0-9]{14}$`)
	reSchemeID   = regexp.MustCompile(`^[0-9]{9}$`)
	reNationalID = regexp.MustCompile(`^[0-9]{12}$`)
	reTaxID      = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
)

// IdentityProof is the candidate identity field-set of an enquiry. A record is
// valid when it carries either a single card number matching its scheme, or
// both the national ID number and the tax ID.
type IdentityProof struct {
	CardType          IdentityCardType
	PrimaryCardNumber string
	NationalIDNumber  string
	TaxID             string
}

// Validate checks the identity-proof rule. It is pure: callers decide when to
// run it (always on create; on update only when one of the four fields is in
// the payload, against the merged record).
func (p IdentityProof) Validate() error {
	switch p.CardType {
	case CardABHA:
		if p.PrimaryCardNumber == "" {
			return &ValidationError{Field: "primary_card_number", Message: "ABHA number required"}
		}
		if !reABHA.MatchString(p.PrimaryCardNumber) {
			return &ValidationError{Field: "primary_card_number", Message: "ABHA number must be 14 digits"}
		}
	case CardSchemeID:
		if p.PrimaryCardNumber == "" {
			return &ValidationError{Field: "primary_card_number", Message: "scheme ID required"}
		}
		if !reSchemeID.MatchString(p.PrimaryCardNumber) {
			return &ValidationError{Field: "primary_card_number", Message: "scheme ID must be 9 digits"}
		}
	case CardNone:
		if p.NationalIDNumber == "" {
			return &ValidationError{Field: "national_id_number", Message: "national ID number required when no identity card is provided"}
		}
		if p.TaxID == "" {
			return &ValidationError{Field: "tax_id", Message: "tax ID required when no identity card is provided"}
		}
		if !reNationalID.MatchString(p.NationalIDNumber) {
			return &ValidationError{Field: "national_id_number", Message: "national ID number must be 12 digits"}
		}
		if !reTaxID.MatchString(p.TaxID) {
			return &ValidationError{Field: "tax_id", Message: "tax ID must match format AAAAA9999A"}
		}
	default:
		return &ValidationError{Field: "identity_card_type", Message: "identity card type must be ABHA or SCHEME_ID"}
	}
	return nil
}
