// Copyright (C) 2026 CareerDesk
// SPDX-License-Identifier: AGPL-3.0-or-later

package portalapi

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrUnauthorized matches any APIError carrying a 401 status.
var ErrUnauthorized = errors.New("portal session is not authorized")

// APIError is returned for every non-2xx answer from the portal.
type APIError struct {
	StatusCode int
	Message    string // From the {"message": ...} body, may be empty
	RequestID  string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("portal api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("portal api: status %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Is(target error) bool {
	return target == ErrUnauthorized && e.StatusCode == http.StatusUnauthorized
}

// MessageOr returns the message the portal put in its error body, or fallback when
// the failure carried none (transport errors, undecodable bodies).
func MessageOr(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// IsUnauthorized reports whether err means the stored credential was rejected.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}
