// Package form holds the schedule request form: user-entered fields, the
// derived date window, and the single transient status line.
package form

import (
	"sync"
	"time"

	"github.com/Szafranee/GrafikPlusWeb/pkg/dates"
)

// ScheduleType selects between the personal schedule and the general one.
type ScheduleType int

const (
	Personal ScheduleType = iota
	General
)

// Status describes the current state of the transient status line.
type Status int

const (
	StatusIdle Status = iota
	StatusBusy
	StatusSuccess
	StatusError
)

const (
	// DefaultFilename is the name the downloaded spreadsheet is saved under
	// when the user does not pick one.
	DefaultFilename = "grafik.xlsx"

	// DefaultSuccessTTL and DefaultErrorTTL govern how long a settled
	// status line stays visible before clearing back to idle.
	DefaultSuccessTTL = 4 * time.Second
	DefaultErrorTTL   = 5 * time.Second
)

// Snapshot is a copy of the form fields at one point in time.
type Snapshot struct {
	Username string
	Password string

	// StartDate and EndDate are inclusive bounds in dates.LayoutISO form.
	// The form does not reject an inverted range; the backend does.
	StartDate string
	EndDate   string

	Type     ScheduleType
	Filename string

	// MinDate and MaxDate are the selectable bounds shown to the user.
	// They are informational; the default window may fall outside them
	// around a year boundary.
	MinDate string
	MaxDate string

	Status  Status
	Message string
}

// Update is published to subscribers whenever the status line changes.
// Scroll asks the view to bring the status line into view.
type Update struct {
	Snapshot Snapshot
	Scroll   bool
}

// State owns the form fields and the status line lifecycle. The status
// line has exactly one writer path: the download runner and the expiry
// timer it arms. Settled messages clear back to idle after their TTL, and
// a newer message always cancels the previous timer first.
type State struct {
	SuccessTTL time.Duration
	ErrorTTL   time.Duration

	mu   sync.Mutex
	snap Snapshot

	generation uint64
	msgSeq     uint64
	expiry     *time.Timer

	subs []chan Update
}

// New derives the form defaults from now: selectable bounds spanning the
// current year and a single-day window on the current week's Monday. This
// runs once; an open session never re-derives the defaults.
func New(now time.Time) *State {
	min, max := dates.YearBounds(now)
	monday := dates.MondayOf(now).Format(dates.LayoutISO)

	return &State{
		SuccessTTL: DefaultSuccessTTL,
		ErrorTTL:   DefaultErrorTTL,
		snap: Snapshot{
			StartDate: monday,
			EndDate:   monday,
			Type:      Personal,
			Filename:  DefaultFilename,
			MinDate:   min.Format(dates.LayoutISO),
			MaxDate:   max.Format(dates.LayoutISO),
		},
	}
}

// Snapshot returns a copy of the current form contents.
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}

// Subscribe registers a listener for status updates. The channel is
// buffered; slow consumers drop updates rather than block the writer.
func (s *State) Subscribe() <-chan Update {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch := make(chan Update, 16)
	s.subs = append(s.subs, ch)
	return ch
}

// Close ends the subscription channels so blocked receivers return. The
// state stays usable for reads; later publishes go nowhere.
func (s *State) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.expiry != nil {
		s.expiry.Stop()
		s.expiry = nil
	}
	for _, ch := range s.subs {
		close(ch)
	}
	s.subs = nil
}

// SetCredentials stores the username and password as typed, unvalidated.
func (s *State) SetCredentials(username, password string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Username = username
	s.snap.Password = password
}

// SetRange stores the inclusive date window as typed.
func (s *State) SetRange(start, end string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.StartDate = start
	s.snap.EndDate = end
}

// SetType selects the schedule variant.
func (s *State) SetType(t ScheduleType) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Type = t
}

// SetFilename stores the target filename, falling back to the default
// when blank.
func (s *State) SetFilename(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if name == "" {
		name = DefaultFilename
	}
	s.snap.Filename = name
}

// Begin marks the start of a submission and returns its generation.
// Outcomes carrying an older generation are discarded, so a second
// submission started while the first is in flight wins regardless of
// which response arrives last.
func (s *State) Begin(message string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.setMessageLocked(StatusBusy, message, 0)
	return s.generation
}

// Settle records the outcome of the submission identified by gen and arms
// the expiry timer. It reports false when gen has been superseded, in
// which case nothing changes.
func (s *State) Settle(gen uint64, status Status, message string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return false
	}

	ttl := s.SuccessTTL
	if status == StatusError {
		ttl = s.ErrorTTL
	}
	s.setMessageLocked(status, message, ttl)
	return true
}

// setMessageLocked replaces the status line, cancelling any pending
// expiry, and publishes the change with a scroll hint. ttl == 0 means the
// message persists until replaced (the busy state).
func (s *State) setMessageLocked(status Status, message string, ttl time.Duration) {
	if s.expiry != nil {
		s.expiry.Stop()
		s.expiry = nil
	}
	s.msgSeq++
	s.snap.Status = status
	s.snap.Message = message

	if ttl > 0 {
		seq := s.msgSeq
		s.expiry = time.AfterFunc(ttl, func() { s.clearExpired(seq) })
	}

	s.publishLocked(Update{Snapshot: s.snap, Scroll: true})
}

// clearExpired returns the status line to idle unless the message was
// replaced after the timer was armed.
func (s *State) clearExpired(seq uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.msgSeq {
		return
	}
	s.msgSeq++
	s.snap.Status = StatusIdle
	s.snap.Message = ""
	s.expiry = nil
	s.publishLocked(Update{Snapshot: s.snap})
}

func (s *State) publishLocked(u Update) {
	for _, ch := range s.subs {
		select {
		case ch <- u:
		default:
			// Drop rather than block; the consumer re-reads the
			// snapshot on its next update anyway.
		}
	}
}
