package form

import (
	"sync"

	"github.com/innovativeGem/userkit/pkg/validator"
)

// Form holds field values and per-field error messages for one input form.
// All methods are safe for concurrent use.
type Form struct {
	mu      sync.RWMutex
	fields  []string
	values  map[string]string
	errors  map[string]string
	pending bool
}

// New creates a form with the given field names, all empty.
func New(fields ...string) *Form {
	f := &Form{
		fields: append([]string(nil), fields...),
		values: make(map[string]string, len(fields)),
		errors: make(map[string]string, len(fields)),
	}
	return f
}

// Set replaces the value of a field and clears that field's error.
// No I/O happens here: clearing is purely local state.
func (f *Form) Set(field, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[field] = value
	delete(f.errors, field)
}

// Value returns the current value of a field.
func (f *Form) Value(field string) string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.values[field]
}

// Error returns the error message shown for a field, or "".
func (f *Form) Error(field string) string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.errors[field]
}

// HasErrors reports whether any field currently shows an error.
func (f *Form) HasErrors() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.errors) > 0
}

// ApplyFieldErrors installs server-returned field messages, replacing all
// current errors.
func (f *Form) ApplyFieldErrors(byField map[string]string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errors = make(map[string]string, len(byField))
	for field, msg := range byField {
		f.errors[field] = msg
	}
}

// Validate runs the given rules and installs any failures as field errors.
// It returns true when all rules pass.
func (f *Form) Validate(rules ...validator.Rule) bool {
	err := validator.Apply(rules...)
	if err == nil {
		f.ApplyFieldErrors(nil)
		return true
	}
	f.ApplyFieldErrors(validator.Extract(err).ByField())
	return false
}

// SetPending marks a submission as in flight. The view uses this to disable
// the submit control while a call is outstanding; the form itself enforces
// nothing.
func (f *Form) SetPending(pending bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pending = pending
}

// Pending reports whether a submission is in flight.
func (f *Form) Pending() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.pending
}

// Fields returns the field names in declaration order.
func (f *Form) Fields() []string {
	return append([]string(nil), f.fields...)
}
