// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package contact

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
)

var (
	ErrInvalid   = errors.New("contact: invalid submission")
	ErrInFlight  = errors.New("contact: submission already in flight")
	ErrUnmounted = errors.New("contact: form unmounted before completion")
)

// Submission is what the visitor typed into the form.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Field names as used in FieldErrors.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldMessage = "message"
)

// Inline error texts.
const (
	TextRequired   = "Required"
	TextEmailShape = "Valid email required"
)

// FieldErrors maps a field name to its inline error text.
type FieldErrors map[string]string

// emailShape is a deliberately loose text@text check, not an RFC validator.
var emailShape = regexp.MustCompile(`^\S+@\S+$`)

// Validate checks the submission. A nil result means it may be sent.
func Validate(s Submission) FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(s.Name) == "" {
		errs[FieldName] = TextRequired
	}
	if !emailShape.MatchString(s.Email) {
		errs[FieldEmail] = TextEmailShape
	}
	if strings.TrimSpace(s.Message) == "" {
		errs[FieldMessage] = TextRequired
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Status is the submission state shown under the form.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Sender delivers a submission to the mail collaborator.
type Sender interface {
	Send(ctx context.Context, s Submission) error
}

// SenderFunc adapts a function to Sender.
type SenderFunc func(ctx context.Context, s Submission) error

func (f SenderFunc) Send(ctx context.Context, s Submission) error {
	return f(ctx, s)
}

// Form is the contact form state: three fields, a status and the inline
// errors of the last validation. It is safe for concurrent use; the send
// completes on whatever goroutine called Submit.
type Form struct {
	mu     sync.Mutex
	values Submission
	status Status
	errs   FieldErrors
	gen    uint64
}

func NewForm() *Form {
	return &Form{status: StatusIdle}
}

// Fill replaces the field values.
func (f *Form) Fill(s Submission) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values = s
}

func (f *Form) Values() Submission {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values
}

func (f *Form) Status() Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

func (f *Form) Errors() FieldErrors {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(FieldErrors, len(f.errs))
	for k, v := range f.errs {
		out[k] = v
	}
	return out
}

// Submit validates the fields and sends them. Invalid input records field
// errors, keeps the status and never reaches the sender. While a send is
// pending further calls fail with ErrInFlight. On success the fields are
// cleared; on failure they are kept so the visitor can resubmit. Nothing
// is retried.
func (f *Form) Submit(ctx context.Context, sender Sender) error {
	f.mu.Lock()
	if f.status == StatusLoading {
		f.mu.Unlock()
		return ErrInFlight
	}
	sub := f.values
	if errs := Validate(sub); errs != nil {
		f.errs = errs
		f.mu.Unlock()
		return ErrInvalid
	}
	f.errs = nil
	f.status = StatusLoading
	gen := f.gen
	f.mu.Unlock()

	err := sender.Send(ctx, sub)

	f.mu.Lock()
	defer f.mu.Unlock()
	if gen != f.gen {
		return ErrUnmounted
	}
	if err != nil {
		f.status = StatusError
		return fmt.Errorf("send contact submission: %w", err)
	}
	f.status = StatusSuccess
	f.values = Submission{}
	return nil
}

// Unmount discards the form; a send still pending is ignored when it
// completes.
func (f *Form) Unmount() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gen++
	f.values = Submission{}
	f.status = StatusIdle
	f.errs = nil
}

// Reset clears the fields and errors and returns to idle. It does nothing
// while a send is pending.
func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.status == StatusLoading {
		return
	}
	f.values = Submission{}
	f.status = StatusIdle
	f.errs = nil
}
