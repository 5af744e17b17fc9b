// Package grid derives flat, display-ready rows from CRM records.
// Every function here is total and side-effect-free; rows are built fresh
// on each call and never cached.
package grid

import (
	"strings"

	"github.com/CHIRAG-singh123/ERP-CRM-Zentro-sub003/internal/application/dto"
	"github.com/CHIRAG-singh123/ERP-CRM-Zentro-sub003/internal/domain/entity"
)

// Derived-field matching is explicit ordered rule lists, first match wins,
// so the precedence stays auditable.
var (
	companyTypes  = []string{"Customer", "Prospect", "Partner", "Vendor", "Lead"}
	healthLabels  = []string{"Excellent", "Good", "Monitor", "At Risk"}
	arrTagPrefix  = "ARR:"
	arrDefaults   = map[string]string{"Customer": "$100K", "Prospect": "$0"}
	healthDefault = map[string]string{"Customer": "Excellent", "Prospect": "Monitor"}
)

// CompanyRow projects a company onto its grid row.
func CompanyRow(c *entity.Company) dto.CompanyGridRow {
	typ := firstMatch(c.Tags, companyTypes, "Customer")
	return dto.CompanyGridRow{
		ID:      c.ID,
		Account: accountName(c),
		Type:    typ,
		Owner:   ownerName(c.CreatedBy),
		ARR:     arrValue(c.Tags, typ),
		Health:  healthValue(c.Tags, typ),
	}
}

func accountName(c *entity.Company) string {
	if c.Name == "" {
		return "Unnamed Company"
	}
	return c.Name
}

func ownerName(ref *entity.Ref) string {
	if ref == nil || ref.Name == "" {
		return "Unknown"
	}
	return ref.Name
}

// arrValue returns the first "ARR:"-prefixed tag with the prefix stripped,
// else a default keyed by company type. A record with no tags at all is "$0".
func arrValue(tags []string, typ string) string {
	if len(tags) == 0 {
		return "$0"
	}
	for _, t := range tags {
		if strings.HasPrefix(t, arrTagPrefix) {
			return strings.TrimPrefix(t, arrTagPrefix)
		}
	}
	if v, ok := arrDefaults[typ]; ok {
		return v
	}
	return "$50K"
}

func healthValue(tags []string, typ string) string {
	if h := firstMatch(tags, healthLabels, ""); h != "" {
		return h
	}
	if v, ok := healthDefault[typ]; ok {
		return v
	}
	return "Good"
}

// firstMatch returns the first tag present in the allowed set, else def.
func firstMatch(tags, allowed []string, def string) string {
	for _, t := range tags {
		for _, a := range allowed {
			if t == a {
				return a
			}
		}
	}
	return def
}

// FormatAddress joins the present address parts with ", ". All parts
// absent yields the literal "No address".
func FormatAddress(a entity.Address) string {
	parts := make([]string, 0, 5)
	for _, p := range []string{a.Street, a.City, a.State, a.ZipCode, a.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return "No address"
	}
	return strings.Join(parts, ", ")
}
