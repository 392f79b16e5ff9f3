package generation

import (
	"context"

	"google.golang.org/genai"
)

// Request is one schema-constrained generation call.
type Request struct {
	SystemInstruction string
	Prompt            string
	Contract          *genai.Schema
}

// ModelClient abstracts the external text-generation service. Implementations
// return the raw JSON text payload; parsing and validation stay in the
// Generator so a fake client can stand in during tests.
type ModelClient interface {
	GenerateJSON(ctx context.Context, req Request) (string, error)
}
