package grid

import (
	"fmt"
	"strings"
	"time"

	"github.com/CHIRAG-singh123/ERP-CRM-Zentro-sub003/internal/application/dto"
	"github.com/CHIRAG-singh123/ERP-CRM-Zentro-sub003/internal/domain/entity"
)

// ContactRow projects a contact onto its grid row.
func ContactRow(ct *entity.Contact, now time.Time) dto.ContactGridRow {
	company := "No Company"
	if ct.CompanyRef != nil && ct.CompanyRef.Name != "" {
		company = ct.CompanyRef.Name
	}
	status := "Active"
	if len(ct.Tags) > 0 {
		status = ct.Tags[0]
	}
	return dto.ContactGridRow{
		ID:           ct.ID,
		Name:         strings.TrimSpace(ct.FirstName + " " + ct.LastName),
		Company:      company,
		Status:       status,
		LastActivity: RelativeTime(ct.UpdatedAt, now),
		Owner:        ownerName(ct.CreatedBy),
	}
}

// PrimaryEmail returns the entry flagged primary, else the first entry.
// ok is false for an empty list; never panics.
func PrimaryEmail(emails []entity.ContactEmail) (entity.ContactEmail, bool) {
	for _, e := range emails {
		if e.IsPrimary {
			return e, true
		}
	}
	if len(emails) > 0 {
		return emails[0], true
	}
	return entity.ContactEmail{}, false
}

// PrimaryPhone returns the entry flagged primary, else the first entry.
func PrimaryPhone(phones []entity.ContactPhone) (entity.ContactPhone, bool) {
	for _, p := range phones {
		if p.IsPrimary {
			return p, true
		}
	}
	if len(phones) > 0 {
		return phones[0], true
	}
	return entity.ContactPhone{}, false
}

// RelativeTime renders t relative to now: "just now", minutes, hours,
// days, then the plain date past a week.
func RelativeTime(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return t.Format("Jan 2, 2006")
	}
}
