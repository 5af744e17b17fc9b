package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// ErrBusy an export is already in flight on this exporter.
var ErrBusy = errors.New("export already in progress")

// Exporter downloads an entity's CSV export into a local directory. At
// most one export runs at a time; overlapping calls return ErrBusy and
// produce no notification.
type Exporter struct {
	api    *Client
	notify Notifier
	entity string
	dir    string
	log    zerolog.Logger

	busy atomic.Bool
}

func NewExporter(api *Client, notify Notifier, entity, dir string, log zerolog.Logger) *Exporter {
	return &Exporter{api: api, notify: notify, entity: entity, dir: dir, log: log}
}

// Busy reports whether an export is in flight.
func (e *Exporter) Busy() bool { return e.busy.Load() }

// Export fetches the CSV and writes it to <dir>/<entity>_export_<date>.csv.
// A partially written file is removed on failure; the path of the written
// file is returned on success.
func (e *Exporter) Export(ctx context.Context) (string, error) {
	if !e.busy.CompareAndSwap(false, true) {
		return "", ErrBusy
	}
	defer e.busy.Store(false)

	data, err := e.api.ExportCSV(ctx, e.entity)
	if err != nil {
		e.fail(err)
		return "", err
	}

	name := fmt.Sprintf("%s_export_%s.csv", e.entity, time.Now().Format("2006-01-02"))
	path := filepath.Join(e.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		os.Remove(path)
		e.fail(err)
		return "", err
	}
	return path, nil
}

// fail surfaces a human-readable message and logs the full error.
func (e *Exporter) fail(err error) {
	msg := "Failed to export"
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		msg = apiErr.Message
	} else if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	e.log.Error().Err(err).Str("entity", e.entity).Msg("export failed")
	e.notify.Error(msg)
}
