// Package usecase implements the business logic for the quiz feature.
package usecase

import "errors"

var (
	// ErrMalformedAIResponse is returned when the model reply cannot be parsed
	// into the expected evaluation shape. The raw reply is never relayed as-is.
	ErrMalformedAIResponse = errors.New("malformed AI response")
)
