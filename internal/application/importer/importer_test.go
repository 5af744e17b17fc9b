package importer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CHIRAG-singh123/ERP-CRM-Zentro-sub003/internal/application/importer"
)

func TestHeaderLines_MatchWireContract(t *testing.T) {
	assert.Equal(t,
		"name,email,phone,website,industry,street,city,state,zipCode,country,tags",
		importer.Companies.HeaderLine())
	assert.Equal(t,
		"title,leadId,contactEmail,companyName,value,currency,stage,probability,closeDate,description,notes",
		importer.Deals.HeaderLine())
	assert.Equal(t,
		"firstName,lastName,email,phone,jobTitle,department,companyName,street,city,state,zipCode,country",
		importer.Contacts.HeaderLine())
	assert.Equal(t, "name,email", importer.Employees.HeaderLine())
}

func TestRequiredSets(t *testing.T) {
	assert.Equal(t, []string{"name"}, importer.Companies.Required())
	assert.Equal(t, []string{"title", "value", "closeDate"}, importer.Deals.Required())
	assert.Equal(t, []string{"firstName", "lastName"}, importer.Contacts.Required())
}

func TestHint_NamesRequiredAndOptional(t *testing.T) {
	hint := importer.Companies.Hint()
	assert.Contains(t, hint, importer.Companies.HeaderLine())
	assert.Contains(t, hint, "Required: name")
	assert.Contains(t, hint, "Optional: email")
}

func TestParse_RowMissingRequiredFieldIsReportedNotFatal(t *testing.T) {
	csv := "name,email,phone,website,industry,street,city,state,zipCode,country,tags\n" +
		"Acme,a@acme.com,,,,,,,,,\n" +
		",missing-name@x.com,,,,,,,,,\n" +
		"Globex,,,,,,,,,,Customer;ARR:$250K\n"
	rows, rowErrors, err := importer.Parse(strings.NewReader(csv), importer.Companies)
	require.NoError(t, err)
	assert.Len(t, rows, 2, "valid rows continue past the bad one")
	require.Len(t, rowErrors, 1)
	assert.Contains(t, rowErrors[0], "Row 3")
	assert.Contains(t, rowErrors[0], `"name"`)
}

func TestParse_MissingRequiredColumnFailsOutright(t *testing.T) {
	_, _, err := importer.Parse(strings.NewReader("email,phone\na@x.com,1\n"), importer.Companies)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"name"`)
}

func TestParse_HeaderIsCaseInsensitiveAndRaggedRowsTolerated(t *testing.T) {
	csv := "Name,Email\nAcme\n"
	rows, rowErrors, err := importer.Parse(strings.NewReader(csv), importer.Companies)
	require.NoError(t, err)
	assert.Empty(t, rowErrors)
	require.Len(t, rows, 1)
	assert.Equal(t, "Acme", rows[0].Get("name"))
	assert.Equal(t, "", rows[0].Get("email"))
}

func TestParse_BlankLinesSkippedSilently(t *testing.T) {
	csv := "name,email\nAcme,\n,\n"
	rows, rowErrors, err := importer.Parse(strings.NewReader(csv), importer.Companies)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Empty(t, rowErrors, "an all-empty row is not an error")
}

func TestSplitTags(t *testing.T) {
	assert.Equal(t, []string{"Customer", "ARR:$250K"}, importer.SplitTags("Customer;ARR:$250K"))
	assert.Equal(t, []string{"a", "b"}, importer.SplitTags("a, b"))
	assert.Nil(t, importer.SplitTags(""))
}

func TestSpecFor(t *testing.T) {
	for _, entity := range []string{"companies", "deals", "contacts", "employees"} {
		spec, ok := importer.SpecFor(entity)
		assert.True(t, ok)
		assert.Equal(t, entity, spec.Entity)
	}
	_, ok := importer.SpecFor("invoices")
	assert.False(t, ok)
}
