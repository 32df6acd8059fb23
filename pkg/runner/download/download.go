// Package download runs one schedule request/response cycle: it builds
// the request from the form, calls the backend, saves the document, and
// writes the outcome back into the form's status line.
package download

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/Szafranee/GrafikPlusWeb/pkg/form"
	"github.com/Szafranee/GrafikPlusWeb/pkg/prefs"
	"github.com/Szafranee/GrafikPlusWeb/pkg/schedule"
)

// Status line texts, matching the strings the form always showed.
const (
	MsgBusy    = "⏳ Pobieranie grafiku..."
	MsgSuccess = "✅ Grafik został pobrany!"

	// FallbackError covers failures the backend did not describe.
	FallbackError = "Nie udało się pobrać grafiku"
)

// Fetcher is the slice of the schedule client the runner needs.
type Fetcher interface {
	Fetch(ctx context.Context, r schedule.Request) ([]byte, error)
}

// Download is a single submission. Each Do call makes exactly one
// backend request and at most one file write; failed submissions are
// terminal, never retried.
type Download struct {
	State  *form.State
	Client Fetcher
	Saver  schedule.Saver

	// Prefs, when set, receives the submitted username. The write is
	// best-effort; persistence failures never fail the submission.
	Prefs prefs.Store

	// SavedPath is the full path of the written document after a
	// successful Do.
	SavedPath string
}

// Do runs the cycle. The form's status line moves idle→busy→{success,
// error} and settles back to idle on its own; an outcome whose submission
// was superseded by a newer one is dropped.
func (d *Download) Do(ctx context.Context) error {
	snap := d.State.Snapshot()

	if d.Prefs != nil && snap.Username != "" {
		if err := d.Prefs.Set(prefs.KeyLastUsername, snap.Username); err != nil {
			log.Printf("download: persisting username: %v", err)
		}
	}

	gen := d.State.Begin(MsgBusy)

	req := schedule.Request{
		Username:   snap.Username,
		Password:   snap.Password,
		StartDate:  snap.StartDate,
		EndDate:    snap.EndDate,
		IsPersonal: snap.Type == form.Personal,
	}

	blob, err := d.Client.Fetch(ctx, req)
	if err != nil {
		return d.fail(gen, err)
	}

	path, err := d.Saver.Save(snap.Filename, blob)
	if err != nil {
		return d.fail(gen, err)
	}

	d.SavedPath = path
	d.State.Settle(gen, form.StatusSuccess, MsgSuccess)
	return nil
}

// fail logs the error and surfaces it on the status line. All failure
// flavors (backend, transport, save) land here; none propagate past the
// returned error.
func (d *Download) fail(gen uint64, err error) error {
	log.Printf("download: %v", err)
	d.State.Settle(gen, form.StatusError, fmt.Sprintf("❌ %s", userMessage(err)))
	return err
}

// userMessage picks the text shown to the user: the backend's own words
// when it sent any, the generic fallback when it sent none, and the
// error's description for everything else.
func userMessage(err error) string {
	var apiErr *schedule.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Message == "" {
			return FallbackError
		}
		return apiErr.Error()
	}
	return err.Error()
}
