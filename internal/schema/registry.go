package schema

import (
	"regexp"

	"github.com/samber/lo"
)

// Section groups fields the way the registration surface presents them.
type Section int

const (
	Company Section = iota
	Address
	Bank
	Categorization
	Compliance
	Agreements
)

func (s Section) String() string {
	switch s {
	case Company:
		return "company"
	case Address:
		return "address"
	case Bank:
		return "bank"
	case Categorization:
		return "categorization"
	case Compliance:
		return "compliance"
	case Agreements:
		return "agreements"
	}
	return "unknown"
}

// Kind declares how a field's value is checked and serialized.
type Kind int

const (
	Text Kind = iota
	Email
	Phone
	Number
	Boolean
	Enum
)

func (k Kind) String() string {
	switch k {
	case Text:
		return "text"
	case Email:
		return "email"
	case Phone:
		return "phone"
	case Number:
		return "number"
	case Boolean:
		return "boolean"
	case Enum:
		return "enum"
	}
	return "unknown"
}

// Field declares one registration field. Name is the wire name used in
// the JSON payload, unique across the registry. Enum fields carry the
// backend's accepted values; Pattern, when set, is checked only against
// non-empty values.
type Field struct {
	Name     string
	Section  Section
	Kind     Kind
	Required bool
	Values   []string
	Pattern  *regexp.Regexp
}

// Server-side format rules for the Indian identifiers. Opaque strings to
// this client beyond the shape check.
var (
	panPattern  = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	gstPattern  = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)
	ifscPattern = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)
)

// registry lists every field in backend schema order. The wire names
// must not drift: they are the registration payload contract.
var registry = []Field{
	// Company identity.
	{Name: "business_vertical", Section: Company, Kind: Text, Required: true},
	{Name: "company_name", Section: Company, Kind: Text, Required: true},
	{Name: "country_origin", Section: Company, Kind: Text, Required: true},
	{Name: "registration_number", Section: Company, Kind: Text},
	{Name: "incorporation_certificate_path", Section: Company, Kind: Text},
	{Name: "contact_person_name", Section: Company, Kind: Text, Required: true},
	{Name: "designation", Section: Company, Kind: Text},
	{Name: "email", Section: Company, Kind: Email, Required: true},
	{Name: "phone_number", Section: Company, Kind: Phone, Required: true},
	{Name: "website", Section: Company, Kind: Text},
	{Name: "year_established", Section: Company, Kind: Number},
	{Name: "business_description", Section: Company, Kind: Text},

	// Registered and supply addresses.
	{Name: "registered_address", Section: Address, Kind: Text, Required: true},
	{Name: "registered_city", Section: Address, Kind: Text, Required: true},
	{Name: "registered_state", Section: Address, Kind: Text, Required: true},
	{Name: "registered_country", Section: Address, Kind: Text, Required: true},
	{Name: "registered_pincode", Section: Address, Kind: Text, Required: true},
	{Name: "supply_address", Section: Address, Kind: Text, Required: true},
	{Name: "supply_city", Section: Address, Kind: Text, Required: true},
	{Name: "supply_state", Section: Address, Kind: Text, Required: true},
	{Name: "supply_country", Section: Address, Kind: Text, Required: true},
	{Name: "supply_pincode", Section: Address, Kind: Text, Required: true},

	// Bank details.
	{Name: "bank_name", Section: Bank, Kind: Text, Required: true},
	{Name: "branch_name", Section: Bank, Kind: Text},
	{Name: "account_number", Section: Bank, Kind: Text, Required: true},
	{Name: "account_type", Section: Bank, Kind: Text},
	{Name: "ifsc_code", Section: Bank, Kind: Text, Required: true, Pattern: ifscPattern},
	{Name: "swift_code", Section: Bank, Kind: Text},
	{Name: "bank_address", Section: Bank, Kind: Text},
	{Name: "currency", Section: Bank, Kind: Text},

	// Supplier categorization.
	{Name: "supplier_type", Section: Categorization, Kind: Enum,
		Values: []string{"manufacturer", "supplier", "service_provider", "distributor"}},
	{Name: "supplier_group", Section: Categorization, Kind: Text},
	{Name: "supplier_category", Section: Categorization, Kind: Text},
	{Name: "annual_turnover", Section: Categorization, Kind: Number},
	{Name: "products_services", Section: Categorization, Kind: Text},
	{Name: "msme_status", Section: Categorization, Kind: Enum,
		Values: []string{"msme", "non_msme", "pending"}},
	{Name: "msme_category", Section: Categorization, Kind: Text},
	{Name: "msme_number", Section: Categorization, Kind: Text},
	{Name: "industry_sector", Section: Categorization, Kind: Text},
	{Name: "employee_count", Section: Categorization, Kind: Text},
	{Name: "certifications", Section: Categorization, Kind: Text},

	// Compliance identifiers.
	{Name: "preferred_currency", Section: Compliance, Kind: Text},
	{Name: "tax_registration_number", Section: Compliance, Kind: Text},
	{Name: "pan_number", Section: Compliance, Kind: Text, Pattern: panPattern},
	{Name: "gst_number", Section: Compliance, Kind: Text, Pattern: gstPattern},
	{Name: "nature_of_assessee", Section: Compliance, Kind: Text},
	{Name: "tan_number", Section: Compliance, Kind: Text},
	{Name: "place_of_supply", Section: Compliance, Kind: Text},
	{Name: "vat_number", Section: Compliance, Kind: Text},
	{Name: "business_license", Section: Compliance, Kind: Text},
	{Name: "gta_registration", Section: Compliance, Kind: Text},
	{Name: "compliance_notes", Section: Compliance, Kind: Text},
	{Name: "credit_rating", Section: Compliance, Kind: Text},
	{Name: "insurance_coverage", Section: Compliance, Kind: Text},
	{Name: "special_certifications", Section: Compliance, Kind: Text},

	// Agreement flags; each must be explicitly accepted to register.
	{Name: "nda", Section: Agreements, Kind: Boolean, Required: true},
	{Name: "sqa", Section: Agreements, Kind: Boolean, Required: true},
	{Name: "four_m", Section: Agreements, Kind: Boolean, Required: true},
	{Name: "code_of_conduct", Section: Agreements, Kind: Boolean, Required: true},
	{Name: "compliance_agreement", Section: Agreements, Kind: Boolean, Required: true},
	{Name: "self_declaration", Section: Agreements, Kind: Boolean, Required: true},
}

var byName = lo.SliceToMap(registry, func(f Field) (string, Field) {
	return f.Name, f
})

// Fields returns every field in registry order.
func Fields() []Field {
	out := make([]Field, len(registry))
	copy(out, registry)
	return out
}

// FieldsOf returns the fields of one section, in registry order.
func FieldsOf(section Section) []Field {
	return lo.Filter(registry, func(f Field, _ int) bool {
		return f.Section == section
	})
}

// Sections returns the section order the form presents.
func Sections() []Section {
	return []Section{Company, Address, Bank, Categorization, Compliance, Agreements}
}

// Names returns every wire name in registry order.
func Names() []string {
	return lo.Map(registry, func(f Field, _ int) string { return f.Name })
}

// Lookup returns the declaration for a wire name.
func Lookup(name string) (Field, bool) {
	f, ok := byName[name]
	return f, ok
}

// IsRequired reports whether the named field must be present. Unknown
// names are not required.
func IsRequired(name string) bool {
	return byName[name].Required
}

// KindOf returns the declared kind for a wire name; Text for unknown
// names.
func KindOf(name string) Kind {
	return byName[name].Kind
}
