package entities

// SubmissionError is the single failure kind of a submission attempt.
// Transport errors, non-2xx API answers and validation failures all end up
// here with a message that can be shown to the provider as-is.
type SubmissionError struct {
	Message string
	Err     error
}

func NewSubmissionError(message string, err error) *SubmissionError {
	return &SubmissionError{Message: message, Err: err}
}

func (e *SubmissionError) Error() string {
	return e.Message
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}
