/*
 * Copyright 2026 CloudWeGo Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package bingcore

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter is returned before any request is sent when a
	// parameter is outside its allowed values.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrRuntimeInvalidParameter is returned when the service rejects the request with 400.
	ErrRuntimeInvalidParameter = errors.New("service rejected request parameters")
	// ErrAuthenticationFailure is returned when the service answers 401.
	ErrAuthenticationFailure = errors.New("authentication failure")
	ErrUnexpectedStatus      = errors.New("unexpected status code")
	ErrTransport             = errors.New("transport failure")
	ErrMalformedResponse     = errors.New("malformed response")
)

// InvalidParameterError names the parameter that failed validation.
type InvalidParameterError struct {
	Param string
	Value string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid %s argument: %q", e.Param, e.Value)
}

func (e *InvalidParameterError) Unwrap() error {
	return ErrInvalidParameter
}

// StatusError carries a response status the client has no handling for.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code: %d, body: %s", e.StatusCode, e.Body)
}

func (e *StatusError) Unwrap() error {
	return ErrUnexpectedStatus
}
