package utils

import "github.com/google/uuid"

// NewID returns an opaque unique identifier for newly created records.
func NewID() string { return uuid.NewString() }
