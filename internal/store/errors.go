// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by backends. Callers should use [errors.Is] to
// match against these values; backends wrap them with operation details.
var (
	// ErrObjectNotFound is returned by Get when the object does not exist.
	ErrObjectNotFound = errors.New("object not found")

	// ErrRevisionConflict is returned when the object changed between the
	// read of its revision and the write.
	ErrRevisionConflict = errors.New("object revision conflict")

	// ErrStoreUnavailable is returned for transient failures: network errors,
	// rate limits, server errors, lost database connections.
	ErrStoreUnavailable = errors.New("object store unavailable")

	// ErrStoreAccessDenied is returned when the credentials are rejected.
	ErrStoreAccessDenied = errors.New("object store access denied")

	// ErrLeaseHeld is returned by AcquireLease while another owner holds the
	// lease.
	ErrLeaseHeld = errors.New("store lease is held by another owner")

	// ErrUnknownBackend is returned by NewBackend for an unsupported backend
	// name.
	ErrUnknownBackend = errors.New("unknown storage backend")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRows is returned when scanning result rows fails.
	ErrScanningRows = errors.New("failed to scan object rows")
)
