package service

import (
	"encoding/json"
	"fmt"
)

/* =========================================================
   Error taxonomy

   Core operations return typed errors; controllers decide the
   HTTP status and what to log. Nothing in this package writes
   to a response or the log directly.
========================================================= */

// ValidationError: required input missing or malformed. Client fault.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// ConfigurationError: the process is missing a secret/credential.
type ConfigurationError struct {
	Msg string
}

func (e *ConfigurationError) Error() string { return e.Msg }

// SecurityError: signature did not verify. The request is discarded.
type SecurityError struct {
	Msg string
}

func (e *SecurityError) Error() string { return e.Msg }

// GatewayError: non-success response from the payment gateway.
// Body carries the gateway's own error payload for diagnosis.
type GatewayError struct {
	StatusCode int
	Body       json.RawMessage
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway returned %d: %s", e.StatusCode, string(e.Body))
}

// PersistenceError: store insert/update failed. Only the
// create-order path treats this as fatal for the request.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s failed: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
