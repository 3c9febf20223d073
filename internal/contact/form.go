// Package contact implements the acknowledgment-only contact form. A valid
// submission raises a "submitted" flag for a fixed window; nothing is sent
// anywhere.
package contact

import (
	"errors"
	"net/mail"
	"sort"
	"strings"
	"sync"
	"time"
)

// ResetDelay is how long the confirmation notice stays up.
const ResetDelay = 3000 * time.Millisecond

var ErrClosed = errors.New("contact form closed")

type Submission struct {
	Name    string
	Email   string
	Message string
}

// FieldErrors maps a field name to a human readable problem.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+fe[k])
	}
	return "invalid submission: " + strings.Join(parts, "; ")
}

// Validate applies the same rules browsers enforce for required text inputs
// and type=email fields.
func (s Submission) Validate() error {
	fe := FieldErrors{}
	if strings.TrimSpace(s.Name) == "" {
		fe["name"] = "Please fill out this field."
	}
	email := strings.TrimSpace(s.Email)
	switch {
	case email == "":
		fe["email"] = "Please fill out this field."
	case !validEmail(email):
		fe["email"] = "Please enter an email address."
	}
	if strings.TrimSpace(s.Message) == "" {
		fe["message"] = "Please fill out this field."
	}
	if len(fe) > 0 {
		return fe
	}
	return nil
}

// validEmail accepts a bare addr-spec only, rejecting display-name forms
// such as "Jo <jo@example.com>".
func validEmail(s string) bool {
	a, err := mail.ParseAddress(s)
	if err != nil || a.Address != s {
		return false
	}
	at := strings.LastIndex(s, "@")
	return at > 0 && at < len(s)-1
}

// scheduleFunc runs f after d and returns a function that cancels it.
type scheduleFunc func(d time.Duration, f func()) (stop func() bool)

func afterFunc(d time.Duration, f func()) func() bool {
	return time.AfterFunc(d, f).Stop
}

type Option func(*Form)

func WithResetDelay(d time.Duration) Option {
	return func(f *Form) { f.delay = d }
}

func withScheduler(s scheduleFunc) Option {
	return func(f *Form) { f.schedule = s }
}

// Form is one contact form instance. It is safe for concurrent use.
type Form struct {
	delay    time.Duration
	schedule scheduleFunc

	mu        sync.Mutex
	submitted bool
	stop      func() bool
	gen       uint64
	closed    bool
}

func New(opts ...Option) *Form {
	f := &Form{delay: ResetDelay, schedule: afterFunc}
	for _, o := range opts {
		o(f)
	}
	return f
}

// Submit validates s. On success the submitted flag is raised immediately and
// lowered once the reset delay elapses; a later submission restarts the
// window. On failure the flag is left as it was.
func (f *Form) Submit(s Submission) error {
	if err := s.Validate(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return ErrClosed
	}
	if f.stop != nil {
		f.stop()
	}
	f.gen++
	gen := f.gen
	f.submitted = true
	f.stop = f.schedule(f.delay, func() { f.reset(gen) })
	return nil
}

func (f *Form) reset(gen uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	// A stale callback may still run after Stop lost the race.
	if f.closed || gen != f.gen {
		return
	}
	f.submitted = false
	f.stop = nil
}

func (f *Form) Submitted() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitted
}

// Close tears the form down and cancels any pending reset. It is idempotent.
func (f *Form) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	f.closed = true
	if f.stop != nil {
		f.stop()
		f.stop = nil
	}
}
