package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/CHIRAG-singh123/ERP-CRM-Zentro-sub003/internal/application/dto"
	"github.com/CHIRAG-singh123/ERP-CRM-Zentro-sub003/internal/application/importer"
	"github.com/CHIRAG-singh123/ERP-CRM-Zentro-sub003/pkg/filecheck"
)

// WizardState the import wizard's lifecycle.
type WizardState int

const (
	StateIdle WizardState = iota
	StateFileSelected
	StateImporting
	StateResult
)

var errNoSpec = errors.New("unknown import entity")

// ImportWizard drives a CSV import for one entity kind: select a file,
// upload it, hold the outcome. No two imports run concurrently on the
// same wizard; Import while already importing is rejected.
type ImportWizard struct {
	api      *Client
	notify   Notifier
	spec     importer.FormatSpec
	validate filecheck.Options

	state    WizardState
	fileName string
	fileData []byte
	fileErr  error
	result   *dto.ImportResult
}

func NewImportWizard(api *Client, notify Notifier, entity string, validate filecheck.Options) (*ImportWizard, error) {
	spec, ok := importer.SpecFor(entity)
	if !ok {
		return nil, errNoSpec
	}
	return &ImportWizard{
		api:      api,
		notify:   notify,
		spec:     spec,
		validate: validate,
		state:    StateIdle,
	}, nil
}

func (w *ImportWizard) State() WizardState     { return w.state }
func (w *ImportWizard) FileName() string       { return w.fileName }
func (w *ImportWizard) FileError() error       { return w.fileErr }
func (w *ImportWizard) Result() *dto.ImportResult { return w.result }

// Hint returns the entity's format hint: the required and optional
// columns exactly as the server's parser enforces them.
func (w *ImportWizard) Hint() string { return w.spec.Hint() }

// HeaderLine returns the exact header line, suitable for copy-paste into
// an empty spreadsheet.
func (w *ImportWizard) HeaderLine() string { return w.spec.HeaderLine() }

// SelectFile validates the candidate file. On failure the wizard stays in
// Idle with the error recorded; on success it moves to FileSelected.
func (w *ImportWizard) SelectFile(name string, data []byte) error {
	if err := filecheck.Validate(name, int64(len(data)), w.validate); err != nil {
		w.state = StateIdle
		w.fileErr = err
		return err
	}
	w.state = StateFileSelected
	w.fileName = name
	w.fileData = data
	w.fileErr = nil
	return nil
}

// Import uploads the selected file. On success the wizard lands in Result
// and announces the created count; on failure it returns to FileSelected
// with the file retained so the user can retry.
func (w *ImportWizard) Import(ctx context.Context) (*dto.ImportResult, error) {
	if w.state != StateFileSelected {
		return nil, errors.New("no file selected")
	}
	w.state = StateImporting

	result, err := w.api.ImportCSV(ctx, w.spec.Entity, w.fileName, bytes.NewReader(w.fileData))
	if err != nil {
		w.state = StateFileSelected
		msg := "Import failed"
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			msg = apiErr.Message
		} else if err.Error() != "" {
			msg = err.Error()
		}
		w.notify.Error(msg)
		return nil, err
	}

	w.state = StateResult
	w.result = result
	w.notify.Success(fmt.Sprintf("Successfully imported %d records", result.Created))
	return result, nil
}

// Done closes the wizard and clears the selection and outcome.
func (w *ImportWizard) Done() {
	w.state = StateIdle
	w.fileName = ""
	w.fileData = nil
	w.fileErr = nil
	w.result = nil
}
