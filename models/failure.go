// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// Failure is the client-facing failure outcome of an operation.
//
// It is returned as an error so that callers can tell it apart from
// unexpected errors with [errors.As]. The transport layer turns it into a
// "bad request" response carrying [Failure.Response].
type Failure struct {
	// Code identifies the failed operation.
	Code ResponseCode

	// Reason is the human-readable explanation sent back as data.
	Reason string

	// Err is the underlying sentinel, kept for errors.Is matching and logs.
	Err error
}

// Error implements the error interface.
func (f *Failure) Error() string {
	if f.Err == nil {
		return fmt.Sprintf("%s: %s", f.Code, f.Reason)
	}
	return fmt.Sprintf("%s: %s: %v", f.Code, f.Reason, f.Err)
}

// Unwrap returns the underlying cause.
func (f *Failure) Unwrap() error {
	return f.Err
}

// Response returns the failure envelope.
func (f *Failure) Response() Response {
	return NewResponse(f.Code, f.Reason)
}

// SignInFail builds a sign-in failure.
func SignInFail(reason string, err error) *Failure {
	return &Failure{Code: CodeSignInFail, Reason: reason, Err: err}
}

// SignUpFail builds a sign-up failure.
func SignUpFail(reason string, err error) *Failure {
	return &Failure{Code: CodeSignUpFail, Reason: reason, Err: err}
}

// ChangePasswordFail builds a change-password failure.
func ChangePasswordFail(reason string, err error) *Failure {
	return &Failure{Code: CodeChangePasswordFail, Reason: reason, Err: err}
}

// InvalidRequestFail builds a failure for input that did not pass validation.
func InvalidRequestFail(reason string, err error) *Failure {
	return &Failure{Code: CodeInvalidRequest, Reason: reason, Err: err}
}
