// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrInvalidNodeToken is returned when the bearer token fails signature,
	// issuer or subject checks.
	ErrInvalidNodeToken = errors.New("invalid node token")

	// ErrNodeTokenExpired is returned when the bearer token is past its expiry.
	ErrNodeTokenExpired = errors.New("node token is expired")
)

// Request validation errors of the message endpoint.
var (
	ErrSourceNodeMismatch = errors.New("message source does not match node token")
	ErrIntegrityCheck     = errors.New("integrity check failed")
)
