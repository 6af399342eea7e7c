// Package store holds the client-visible state: one reactive container
// per entity type plus one for the dashboard aggregate.
//
// Every action follows the same contract: set loading and clear the error
// before calling the facade, clear loading no matter how the call ends,
// reconcile the local collection on success, and on failure record a
// human-readable message AND return the error so the caller can react.
// Derived views are computed on every call, never stored.
package store

import (
	"errors"

	"github.com/dmolina/fleetdesk/internal/service"
)

const genericErrorMessage = "An unexpected error occurred"

// errorMessage is the single point converting facade errors into
// user-facing text: a facade error message wins, then the raw error
// text, then a generic fallback. Nothing below the stores renders error
// strings and nothing above them sees raw errors unrendered.
func errorMessage(err error) string {
	var apiErr *service.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return genericErrorMessage
}
