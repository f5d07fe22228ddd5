package utils

import "errors"

// Domain-level errors used by the service layer to provide
// fine-grained failure reasons.
var (
	// ErrNotFound covers both a truly absent row and a row owned by a
	// different user. Callers cannot distinguish the two causes, so
	// probing ids leaks nothing about other owners' data.
	ErrNotFound = errors.New("not_found")

	// ErrMissingOwner signals a caller bug: every list/read must be
	// scoped to an authenticated owner.
	ErrMissingOwner = errors.New("owner_id_required")
)
