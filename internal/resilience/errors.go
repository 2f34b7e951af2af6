// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package resilience classifies collaborator errors and retries the
// transient ones. The engine calls out to the entity-recognizer sidecar per
// record; a flaky network hop must degrade a single record to "partial", not
// fail the batch, and retrying blindly on permanent errors would only slow
// the scan down.
package resilience

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"syscall"
)

// ErrorType buckets collaborator failures by how they should be handled.
type ErrorType int

const (
	ErrorTypeUnknown     ErrorType = iota
	ErrorTypeTransient             // temporary network issues, recognizer restarts
	ErrorTypePermanent             // misconfiguration, bad endpoint
	ErrorTypeTimeout               // request deadlines
	ErrorTypeContract              // detector contract violations (bad offsets, bad labels)
	ErrorTypeUnavailable           // recognizer sidecar down
)

func (et ErrorType) String() string {
	switch et {
	case ErrorTypeTransient:
		return "Transient"
	case ErrorTypePermanent:
		return "Permanent"
	case ErrorTypeTimeout:
		return "Timeout"
	case ErrorTypeContract:
		return "Contract"
	case ErrorTypeUnavailable:
		return "Unavailable"
	default:
		return fmt.Sprintf("ErrorType(%d)", int(et))
	}
}

// ClassifiedError wraps an error with its handling category.
type ClassifiedError struct {
	Original  error
	Type      ErrorType
	Message   string
	Retryable bool
}

func (e *ClassifiedError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Original.Error()
}

func (e *ClassifiedError) Unwrap() error { return e.Original }

// IsRetryable reports whether the operation that produced this error is
// worth retrying.
func (e *ClassifiedError) IsRetryable() bool { return e.Retryable }

// ClassifyError categorizes an arbitrary error. Already-classified errors
// pass through unchanged.
func ClassifyError(err error) *ClassifiedError {
	if err == nil {
		return nil
	}

	var classified *ClassifiedError
	if errors.As(err, &classified) {
		return classified
	}

	if isNetworkError(err) {
		return &ClassifiedError{
			Original:  err,
			Type:      ErrorTypeTransient,
			Message:   fmt.Sprintf("network error: %v", err),
			Retryable: true,
		}
	}

	if isTimeoutError(err) {
		return &ClassifiedError{
			Original:  err,
			Type:      ErrorTypeTimeout,
			Message:   fmt.Sprintf("timeout: %v", err),
			Retryable: true,
		}
	}

	errStr := strings.ToLower(err.Error())
	switch {
	case strings.Contains(errStr, "service unavailable") || strings.Contains(errStr, "connection refused"):
		return &ClassifiedError{
			Original:  err,
			Type:      ErrorTypeUnavailable,
			Message:   fmt.Sprintf("recognizer unavailable: %v", err),
			Retryable: true,
		}
	case strings.Contains(errStr, "invalid") || strings.Contains(errStr, "malformed") ||
		strings.Contains(errStr, "out of bounds"):
		return &ClassifiedError{
			Original:  err,
			Type:      ErrorTypeContract,
			Message:   fmt.Sprintf("detector contract violation: %v", err),
			Retryable: false,
		}
	}

	return &ClassifiedError{
		Original:  err,
		Type:      ErrorTypeUnknown,
		Retryable: false,
	}
}

func isNetworkError(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	return errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.EHOSTUNREACH) ||
		errors.Is(err, syscall.ENETUNREACH)
}

func isTimeoutError(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "deadline exceeded")
}

// NewTransientError creates an error that retry logic will attempt again.
func NewTransientError(message string, cause error) *ClassifiedError {
	return &ClassifiedError{Original: cause, Type: ErrorTypeTransient, Message: message, Retryable: true}
}

// NewPermanentError creates an error that retry logic will surface at once.
func NewPermanentError(message string, cause error) *ClassifiedError {
	return &ClassifiedError{Original: cause, Type: ErrorTypePermanent, Message: message, Retryable: false}
}

// NewContractError marks a detector contract violation (e.g. span offsets
// outside the record text). Never retried.
func NewContractError(message string, cause error) *ClassifiedError {
	return &ClassifiedError{Original: cause, Type: ErrorTypeContract, Message: message, Retryable: false}
}
