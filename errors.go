package main

// ParseError means the description text did not contain the expected
// statistics phrases.
type ParseError struct {
	Message string
}

func (e *ParseError) Error() string {
	return e.Message
}

// ValidationError means the sample size input is missing or not a positive
// integer.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ComputationError means the extracted statistics cannot parameterize a
// normal density (zero deviation, inverted range).
type ComputationError struct {
	Message string
}

func (e *ComputationError) Error() string {
	return e.Message
}
