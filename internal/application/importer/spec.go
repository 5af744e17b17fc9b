// Package importer parses bulk-import CSV uploads against per-entity
// format contracts and reports per-row errors instead of aborting the
// whole file.
package importer

import "strings"

// Field one column of an import contract.
type Field struct {
	Name     string
	Required bool
}

// FormatSpec the CSV contract of one entity kind. The header line and the
// required/optional split are advertised to users verbatim; the server
// enforces exactly the same requirements, so the two must never drift.
type FormatSpec struct {
	Entity string
	Fields []Field
}

// Import contracts. Column names and required sets are part of the wire
// contract and must not change.
var (
	Companies = FormatSpec{
		Entity: "companies",
		Fields: []Field{
			{Name: "name", Required: true},
			{Name: "email"}, {Name: "phone"}, {Name: "website"}, {Name: "industry"},
			{Name: "street"}, {Name: "city"}, {Name: "state"}, {Name: "zipCode"}, {Name: "country"},
			{Name: "tags"},
		},
	}

	Deals = FormatSpec{
		Entity: "deals",
		Fields: []Field{
			{Name: "title", Required: true},
			{Name: "leadId"}, {Name: "contactEmail"}, {Name: "companyName"},
			{Name: "value", Required: true},
			{Name: "currency"}, {Name: "stage"}, {Name: "probability"},
			{Name: "closeDate", Required: true},
			{Name: "description"}, {Name: "notes"},
		},
	}

	Contacts = FormatSpec{
		Entity: "contacts",
		Fields: []Field{
			{Name: "firstName", Required: true},
			{Name: "lastName", Required: true},
			{Name: "email"}, {Name: "phone"}, {Name: "jobTitle"}, {Name: "department"},
			{Name: "companyName"},
			{Name: "street"}, {Name: "city"}, {Name: "state"}, {Name: "zipCode"}, {Name: "country"},
		},
	}

	Employees = FormatSpec{
		Entity: "employees",
		Fields: []Field{
			{Name: "name", Required: true},
			{Name: "email", Required: true},
		},
	}
)

// HeaderLine returns the exact comma-joined header to advertise and copy.
func (s FormatSpec) HeaderLine() string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}
	return strings.Join(names, ",")
}

// Required returns the names of the required columns in order.
func (s FormatSpec) Required() []string {
	var out []string
	for _, f := range s.Fields {
		if f.Required {
			out = append(out, f.Name)
		}
	}
	return out
}

// Optional returns the names of the optional columns in order.
func (s FormatSpec) Optional() []string {
	var out []string
	for _, f := range s.Fields {
		if !f.Required {
			out = append(out, f.Name)
		}
	}
	return out
}

// Hint renders the user-facing format hint for this entity kind.
func (s FormatSpec) Hint() string {
	var b strings.Builder
	b.WriteString("CSV format for ")
	b.WriteString(s.Entity)
	b.WriteString(":\n")
	b.WriteString(s.HeaderLine())
	b.WriteString("\nRequired: ")
	b.WriteString(strings.Join(s.Required(), ", "))
	if opt := s.Optional(); len(opt) > 0 {
		b.WriteString("\nOptional: ")
		b.WriteString(strings.Join(opt, ", "))
	}
	return b.String()
}

// SpecFor returns the contract for an entity kind, ok=false when unknown.
func SpecFor(entity string) (FormatSpec, bool) {
	switch entity {
	case "companies":
		return Companies, true
	case "deals":
		return Deals, true
	case "contacts":
		return Contacts, true
	case "employees":
		return Employees, true
	}
	return FormatSpec{}, false
}
