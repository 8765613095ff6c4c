// Package userlist drives the paged user listing: it remembers the current
// page of users, knows whether later and earlier pages exist, and fetches
// pages through the API client.
//
// Loads may overlap when the user pages quickly. Each Load stamps its
// request with a generation number and a response is applied only if no
// newer Load started in the meantime; a late response is dropped, never
// applied over fresher state and never surfaced as a failure.
package userlist
