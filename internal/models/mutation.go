package models

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// MutationResponse is the raw payload returned by a group mutation.
// A successful transport may still carry an error map naming the entities
// the backend refused to change.
type MutationResponse struct {
	Error map[string][]string `json:"error,omitempty"`
}

// Rejected returns the non-empty entries of the error map.
func (r *MutationResponse) Rejected() map[string][]string {
	if r == nil || len(r.Error) == 0 {
		return nil
	}
	rejected := map[string][]string{}
	for field, ids := range r.Error {
		if len(ids) > 0 {
			rejected[field] = ids
		}
	}
	if len(rejected) == 0 {
		return nil
	}
	return rejected
}

// MutationOutcome tags how a remote mutation ended.
type MutationOutcome string

const (
	OutcomeSuccess             MutationOutcome = "success"
	OutcomeStructuredRejection MutationOutcome = "structured_rejection"
	OutcomeTransportFailure    MutationOutcome = "transport_failure"
)

// MutationResult is the classified result of a remote mutation.
type MutationResult struct {
	Outcome  MutationOutcome
	Rejected map[string][]string
	Err      error
}

// OK returns true if the mutation succeeded.
func (r MutationResult) OK() bool {
	return r.Outcome == OutcomeSuccess
}

// ClassifyMutation maps a response/error pair onto a MutationResult.
func ClassifyMutation(resp *MutationResponse, err error) MutationResult {
	if err != nil {
		return MutationResult{Outcome: OutcomeTransportFailure, Err: err}
	}
	if rejected := resp.Rejected(); rejected != nil {
		return MutationResult{
			Outcome:  OutcomeStructuredRejection,
			Rejected: rejected,
			Err:      &RejectionError{Entities: rejected},
		}
	}
	return MutationResult{Outcome: OutcomeSuccess}
}

// RejectionError is returned when the backend accepted the request but refused
// to change some entities.
type RejectionError struct {
	Entities map[string][]string
}

func (e *RejectionError) Error() string {
	fields := make([]string, 0, len(e.Entities))
	for field := range e.Entities {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s=[%s]", field, strings.Join(e.Entities[field], ",")))
	}
	return "rejected by group service: " + strings.Join(parts, " ")
}

// TransportError wraps a failed request to a remote service.
type TransportError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: unexpected status %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsTransportError checks whether err is (or wraps) a TransportError.
func IsTransportError(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
