package download

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Szafranee/GrafikPlusWeb/pkg/form"
	"github.com/Szafranee/GrafikPlusWeb/pkg/prefs"
	"github.com/Szafranee/GrafikPlusWeb/pkg/schedule"
)

type fakeFetcher struct {
	mu       sync.Mutex
	calls    int
	requests []schedule.Request
	fetch    func(ctx context.Context, r schedule.Request) ([]byte, error)
}

func (f *fakeFetcher) Fetch(ctx context.Context, r schedule.Request) ([]byte, error) {
	f.mu.Lock()
	f.calls++
	f.requests = append(f.requests, r)
	f.mu.Unlock()
	return f.fetch(ctx, r)
}

type fakeSaver struct {
	mu    sync.Mutex
	saves []string
	blobs [][]byte
	err   error
}

func (s *fakeSaver) Save(name string, blob []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return "", s.err
	}
	s.saves = append(s.saves, name)
	s.blobs = append(s.blobs, blob)
	return "/tmp/" + name, nil
}

type memStore struct {
	mu     sync.Mutex
	values map[string]string
}

func newMemStore() *memStore {
	return &memStore{values: make(map[string]string)}
}

func (m *memStore) Get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *memStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func newState(t *testing.T) *form.State {
	t.Helper()
	s := form.New(time.Date(2025, time.June, 11, 10, 0, 0, 0, time.UTC))
	s.SuccessTTL = 20 * time.Millisecond
	s.ErrorTTL = 20 * time.Millisecond
	return s
}

func waitForIdle(t *testing.T, s *form.State) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for {
		if snap := s.Snapshot(); snap.Status == form.StatusIdle && snap.Message == "" {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("status never returned to idle: %+v", s.Snapshot())
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestDoSuccess(t *testing.T) {
	state := newState(t)
	state.SetCredentials("jan.kowalski", "sekret")
	state.SetRange("2025-06-09", "2025-06-15")
	state.SetFilename("czerwiec.xlsx")

	document := []byte("spreadsheet-bytes")
	fetcher := &fakeFetcher{fetch: func(ctx context.Context, r schedule.Request) ([]byte, error) {
		return document, nil
	}}
	saver := &fakeSaver{}
	store := newMemStore()

	d := &Download{State: state, Client: fetcher, Saver: saver, Prefs: store}
	if err := d.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if fetcher.calls != 1 {
		t.Fatalf("expected exactly one request, got %d", fetcher.calls)
	}
	req := fetcher.requests[0]
	want := schedule.Request{
		Username:   "jan.kowalski",
		Password:   "sekret",
		StartDate:  "2025-06-09",
		EndDate:    "2025-06-15",
		IsPersonal: true,
	}
	if req != want {
		t.Fatalf("request = %+v, want %+v", req, want)
	}

	if len(saver.saves) != 1 || saver.saves[0] != "czerwiec.xlsx" {
		t.Fatalf("saves = %v, want one save of czerwiec.xlsx", saver.saves)
	}
	if string(saver.blobs[0]) != string(document) {
		t.Fatalf("saved blob mismatch")
	}
	if d.SavedPath != "/tmp/czerwiec.xlsx" {
		t.Fatalf("SavedPath = %q", d.SavedPath)
	}

	if got, _ := store.Get(prefs.KeyLastUsername); got != "jan.kowalski" {
		t.Fatalf("lastUsername = %q", got)
	}

	if snap := state.Snapshot(); snap.Status != form.StatusSuccess || snap.Message != MsgSuccess {
		t.Fatalf("status after success: %v %q", snap.Status, snap.Message)
	}
	waitForIdle(t, state)
}

func TestDoGeneralScheduleNotPersonal(t *testing.T) {
	state := newState(t)
	state.SetType(form.General)

	fetcher := &fakeFetcher{fetch: func(ctx context.Context, r schedule.Request) ([]byte, error) {
		return []byte("x"), nil
	}}
	d := &Download{State: state, Client: fetcher, Saver: &fakeSaver{}}
	if err := d.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fetcher.requests[0].IsPersonal {
		t.Fatalf("general schedule sent isPersonal=true")
	}
}

func TestDoBackendError(t *testing.T) {
	state := newState(t)
	fetcher := &fakeFetcher{fetch: func(ctx context.Context, r schedule.Request) ([]byte, error) {
		return nil, &schedule.APIError{Title: "Błąd logowania", Message: "Brak autoryzacji", StatusCode: 401}
	}}
	saver := &fakeSaver{}

	d := &Download{State: state, Client: fetcher, Saver: saver}
	if err := d.Do(context.Background()); err == nil {
		t.Fatalf("expected an error")
	}

	if len(saver.saves) != 0 {
		t.Fatalf("failed fetch must not save anything")
	}
	snap := state.Snapshot()
	if snap.Status != form.StatusError {
		t.Fatalf("status = %v", snap.Status)
	}
	if !strings.Contains(snap.Message, "Brak autoryzacji") {
		t.Fatalf("message %q does not carry the backend text", snap.Message)
	}
	waitForIdle(t, state)
}

func TestDoErrorFallbackMessage(t *testing.T) {
	state := newState(t)
	fetcher := &fakeFetcher{fetch: func(ctx context.Context, r schedule.Request) ([]byte, error) {
		// Unparseable error body: status known, no words from the backend.
		return nil, &schedule.APIError{StatusCode: 500}
	}}

	d := &Download{State: state, Client: fetcher, Saver: &fakeSaver{}}
	if err := d.Do(context.Background()); err == nil {
		t.Fatalf("expected an error")
	}
	if snap := state.Snapshot(); !strings.Contains(snap.Message, FallbackError) {
		t.Fatalf("message %q missing fallback text", snap.Message)
	}
}

func TestDoTransportErrorUsesItsDescription(t *testing.T) {
	state := newState(t)
	fetcher := &fakeFetcher{fetch: func(ctx context.Context, r schedule.Request) ([]byte, error) {
		return nil, errors.New("dial tcp: connection refused")
	}}

	d := &Download{State: state, Client: fetcher, Saver: &fakeSaver{}}
	if err := d.Do(context.Background()); err == nil {
		t.Fatalf("expected an error")
	}
	if snap := state.Snapshot(); !strings.Contains(snap.Message, "connection refused") {
		t.Fatalf("message %q missing transport error text", snap.Message)
	}
}

// Two overlapping submissions used to race on the status line with the
// later response winning even when it belonged to the earlier attempt.
// Now the earlier outcome is discarded once a newer submission begins.
func TestOverlappingSubmissionsLatestWins(t *testing.T) {
	state := newState(t)
	state.SuccessTTL = time.Minute // keep the outcome visible for asserts
	state.ErrorTTL = time.Minute

	release := make(chan struct{})
	slow := &fakeFetcher{fetch: func(ctx context.Context, r schedule.Request) ([]byte, error) {
		<-release
		return nil, errors.New("slow failure")
	}}
	fast := &fakeFetcher{fetch: func(ctx context.Context, r schedule.Request) ([]byte, error) {
		return []byte("fast"), nil
	}}
	saver := &fakeSaver{}

	firstDone := make(chan struct{})
	first := &Download{State: state, Client: slow, Saver: saver}
	go func() {
		defer close(firstDone)
		_ = first.Do(context.Background())
	}()

	// Wait until the first submission is in flight.
	deadline := time.Now().Add(time.Second)
	for {
		slow.mu.Lock()
		started := slow.calls == 1
		slow.mu.Unlock()
		if started {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("first submission never started")
		}
		time.Sleep(time.Millisecond)
	}

	second := &Download{State: state, Client: fast, Saver: saver}
	if err := second.Do(context.Background()); err != nil {
		t.Fatalf("second submission failed: %v", err)
	}

	close(release)
	<-firstDone

	if snap := state.Snapshot(); snap.Status != form.StatusSuccess || snap.Message != MsgSuccess {
		t.Fatalf("stale failure overwrote newer outcome: %v %q", snap.Status, snap.Message)
	}
}
