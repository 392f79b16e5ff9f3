package domain

import "errors"

// Input validation errors (rejected before any external call)
var (
	ErrEmptyPrompt       = errors.New("prompt must not be empty")
	ErrUnsupportedSystem = errors.New("unsupported game system")
	ErrInvalidNPCCount   = errors.New("npc count must be between 0 and 3")
)

// Generation errors
var (
	ErrGenerationService = errors.New("generation service failure")
	ErrMalformedResponse = errors.New("generation response did not match the expected schema")
)

// Store errors
var (
	ErrNotFound         = errors.New("character not found")
	ErrStoreUnavailable = errors.New("character store unavailable")
)
