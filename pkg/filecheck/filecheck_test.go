package filecheck_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CHIRAG-singh123/ERP-CRM-Zentro-sub003/pkg/filecheck"
)

var csvOpts = filecheck.Options{MaxSizeBytes: 10 * 1024 * 1024, Accept: ".csv"}

func TestValidate_AcceptsCSVWithinLimit(t *testing.T) {
	assert.NoError(t, filecheck.Validate("companies.csv", 1024, csvOpts))
}

func TestValidate_SizeErrorIndependentOfName(t *testing.T) {
	// Oversized files fail on size even when the name is also wrong.
	err := filecheck.Validate("data.xlsx", 11*1024*1024, csvOpts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "10MB")
}

func TestValidate_TypeErrorWhenSizeWithinBounds(t *testing.T) {
	err := filecheck.Validate("data.xlsx", 1024, csvOpts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "csv")
}

func TestValidate_ExtensionIsCaseInsensitive(t *testing.T) {
	assert.NoError(t, filecheck.Validate("EXPORT.CSV", 1024, csvOpts))
}

func TestValidate_DotIsEscapedNotWildcard(t *testing.T) {
	// "xcsv" must not satisfy ".csv": the dot is a literal, not "any char".
	err := filecheck.Validate("dataxcsv", 1024, csvOpts)
	assert.Error(t, err)
}

func TestValidate_ExactLimitIsAllowed(t *testing.T) {
	assert.NoError(t, filecheck.Validate("a.csv", csvOpts.MaxSizeBytes, csvOpts))
}

func TestValidate_ZeroOptionsAcceptAnything(t *testing.T) {
	assert.NoError(t, filecheck.Validate("anything.bin", 1<<40, filecheck.Options{}))
}
