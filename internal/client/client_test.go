package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CHIRAG-singh123/ERP-CRM-Zentro-sub003/pkg/filecheck"
)

type recordingNotifier struct {
	mu        sync.Mutex
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, msg)
}

func (n *recordingNotifier) Error(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, msg)
}

func csvOptions() filecheck.Options {
	return filecheck.Options{MaxSizeBytes: 10 << 20, Accept: ".csv"}
}

func TestExporterSurfacesServerErrorMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"db down"}`))
	}))
	defer server.Close()

	notify := &recordingNotifier{}
	api := New(server.URL, "token", zerolog.Nop())
	exp := NewExporter(api, notify, "companies", t.TempDir(), zerolog.Nop())

	_, err := exp.Export(context.Background())
	require.Error(t, err)
	require.Len(t, notify.errors, 1)
	assert.Equal(t, "db down", notify.errors[0])
}

func TestExporterFallbackMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	notify := &recordingNotifier{}
	api := New(server.URL, "token", zerolog.Nop())
	exp := NewExporter(api, notify, "contacts", t.TempDir(), zerolog.Nop())

	_, err := exp.Export(context.Background())
	require.Error(t, err)
	require.Len(t, notify.errors, 1)
	assert.Equal(t, "Bad Gateway", notify.errors[0])
}

func TestExporterWritesFile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/companies/export", r.URL.Path)
		assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))
		w.Write([]byte("name,email\nAcme,a@acme.com\n"))
	}))
	defer server.Close()

	dir := t.TempDir()
	api := New(server.URL, "token", zerolog.Nop())
	exp := NewExporter(api, &recordingNotifier{}, "companies", dir, zerolog.Nop())

	path, err := exp.Export(context.Background())
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))
	assert.True(t, strings.HasPrefix(filepath.Base(path), "companies_export_"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Acme")
}

func TestExporterIgnoresOverlappingExport(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		w.Write([]byte("name\n"))
	}))
	defer server.Close()

	api := New(server.URL, "token", zerolog.Nop())
	exp := NewExporter(api, &recordingNotifier{}, "deals", t.TempDir(), zerolog.Nop())

	done := make(chan error, 1)
	go func() {
		_, err := exp.Export(context.Background())
		done <- err
	}()

	// Wait until the first export is in flight, then click again.
	for !exp.Busy() {
		time.Sleep(time.Millisecond)
	}
	_, err := exp.Export(context.Background())
	assert.ErrorIs(t, err, ErrBusy)

	close(release)
	require.NoError(t, <-done)
	assert.False(t, exp.Busy())
}

func TestImportWizardLifecycle(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/companies/import", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, header, err := r.FormFile("file")
		require.NoError(t, err)
		assert.Equal(t, "accounts.csv", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"created":3,"duplicates":1,"errors":["Row 4: missing required field \"name\""]}`))
	}))
	defer server.Close()

	notify := &recordingNotifier{}
	api := New(server.URL, "token", zerolog.Nop())
	wizard, err := NewImportWizard(api, notify, "companies", csvOptions())
	require.NoError(t, err)
	assert.Equal(t, StateIdle, wizard.State())

	require.NoError(t, wizard.SelectFile("accounts.csv", []byte("name\nAcme\nBeta\nGamma\n")))
	assert.Equal(t, StateFileSelected, wizard.State())

	result, err := wizard.Import(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StateResult, wizard.State())
	assert.Equal(t, 3, result.Created)
	assert.Equal(t, 1, result.Duplicates)
	assert.Len(t, result.Errors, 1)

	require.Len(t, notify.successes, 1)
	assert.Equal(t, "Successfully imported 3 records", notify.successes[0])

	wizard.Done()
	assert.Equal(t, StateIdle, wizard.State())
	assert.Nil(t, wizard.Result())
}

func TestImportWizardRejectsBadFile(t *testing.T) {
	api := New("http://unused", "token", zerolog.Nop())
	wizard, err := NewImportWizard(api, &recordingNotifier{}, "contacts", csvOptions())
	require.NoError(t, err)

	err = wizard.SelectFile("contacts.xlsx", []byte("junk"))
	require.Error(t, err)
	assert.Equal(t, StateIdle, wizard.State())
	assert.Error(t, wizard.FileError())
}

func TestImportWizardFailureRetainsFile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"code":"VALIDATION","message":"CSV file is empty"}`))
	}))
	defer server.Close()

	notify := &recordingNotifier{}
	api := New(server.URL, "token", zerolog.Nop())
	wizard, err := NewImportWizard(api, notify, "deals", csvOptions())
	require.NoError(t, err)

	require.NoError(t, wizard.SelectFile("deals.csv", []byte("")))
	_, err = wizard.Import(context.Background())
	require.Error(t, err)

	// Back to FileSelected with the file retained for a retry.
	assert.Equal(t, StateFileSelected, wizard.State())
	assert.Equal(t, "deals.csv", wizard.FileName())
	require.Len(t, notify.errors, 1)
	assert.Equal(t, "CSV file is empty", notify.errors[0])
}

func TestImportWizardHints(t *testing.T) {
	api := New("http://unused", "token", zerolog.Nop())
	wizard, err := NewImportWizard(api, NopNotifier{}, "companies", csvOptions())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(wizard.HeaderLine(), "name,email,phone"))
	assert.Contains(t, wizard.Hint(), "Required: name")

	_, err = NewImportWizard(api, NopNotifier{}, "invoices", csvOptions())
	assert.Error(t, err)
}
