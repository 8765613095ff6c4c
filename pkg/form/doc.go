// Package form models the state of an input form: field values, pending
// submission, and per-field error messages.
//
// The error-clearing rule mirrors the signup flow's behavior: editing a
// field clears that field's error locally, without any network call, while
// errors on other fields stay visible until their fields are edited or a
// new submission replaces them. Server-side validation failures are
// installed with ApplyFieldErrors; client-side checks run through the
// validator package before submission.
package form
