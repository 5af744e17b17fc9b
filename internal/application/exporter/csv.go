// Package exporter renders record sets as CSV using the same column
// contracts the importer accepts, so an exported file round-trips.
package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/CHIRAG-singh123/ERP-CRM-Zentro-sub003/internal/application/grid"
	"github.com/CHIRAG-singh123/ERP-CRM-Zentro-sub003/internal/application/importer"
	"github.com/CHIRAG-singh123/ERP-CRM-Zentro-sub003/internal/domain/entity"
)

// Companies writes the company set as CSV.
func Companies(w io.Writer, companies []*entity.Company) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(strings.Split(importer.Companies.HeaderLine(), ",")); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, c := range companies {
		rec := []string{
			c.Name, c.Email, c.Phone, c.Website, c.Industry,
			c.Address.Street, c.Address.City, c.Address.State, c.Address.ZipCode, c.Address.Country,
			strings.Join(c.Tags, ";"),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write company row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Contacts writes the contact set as CSV. The email and phone columns
// carry the primary entry of each contact.
func Contacts(w io.Writer, contacts []*entity.Contact) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(strings.Split(importer.Contacts.HeaderLine(), ",")); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, ct := range contacts {
		var email, phone, companyName string
		if e, ok := grid.PrimaryEmail(ct.Emails); ok {
			email = e.Email
		}
		if p, ok := grid.PrimaryPhone(ct.Phones); ok {
			phone = p.Phone
		}
		if ct.CompanyRef != nil {
			companyName = ct.CompanyRef.Name
		}
		rec := []string{
			ct.FirstName, ct.LastName, email, phone, ct.JobTitle, ct.Department, companyName,
			ct.Address.Street, ct.Address.City, ct.Address.State, ct.Address.ZipCode, ct.Address.Country,
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write contact row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Deals writes the deal set as CSV.
func Deals(w io.Writer, deals []*entity.Deal) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(strings.Split(importer.Deals.HeaderLine(), ",")); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, d := range deals {
		rec := []string{
			d.Title, d.LeadID, d.ContactEmail, d.CompanyName,
			d.Value.String(), d.Currency, d.Stage, strconv.Itoa(d.Probability),
			d.CloseDate.Format("2006-01-02"), d.Description, d.Notes,
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write deal row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
