package domain

import "errors"

// Sentinel errors for the console's failure taxonomy. The API layer maps each
// of these to an HTTP status exactly once, in the central error handler.
var (
	// ErrInvalidCredentials is the authentication failure propagated from the
	// backend's login endpoint.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotAuthenticated marks a request reaching a protected operation
	// without a usable session.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrForbidden marks a role check failure.
	ErrForbidden = errors.New("access forbidden")

	// ErrEmptyCart rejects a checkout on an empty cart before any network
	// call is attempted.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrOrderInFlight rejects a checkout while a previous one is still
	// awaiting the backend's answer.
	ErrOrderInFlight = errors.New("order submission already in flight")

	// ErrNegativeStock rejects staging a negative inventory quantity.
	ErrNegativeStock = errors.New("stock cannot be negative")

	// ErrConfirmationRequired rejects a deletion that lacks the explicit
	// confirmation step.
	ErrConfirmationRequired = errors.New("deletion requires confirmation")

	// ErrNoStagedStock means a stock commit was requested for a product with
	// no staged draft value.
	ErrNoStagedStock = errors.New("no staged stock value for product")

	// ErrBackendUnavailable wraps request failures and timeouts talking to
	// the commerce backend.
	ErrBackendUnavailable = errors.New("backend unavailable")

	// ErrSessionStore wraps failures of the session store; the gate treats
	// these as "session not yet resolved", never as signed-out.
	ErrSessionStore = errors.New("session store unavailable")

	// ErrNotFound is returned when the backend reports a missing record.
	ErrNotFound = errors.New("not found")
)
