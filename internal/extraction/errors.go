package extraction

import "errors"

// Domain-specific errors for the extraction package.
var (
	ErrEmptyDialogue   = errors.New("dialogue is empty")
	ErrDialogueTooLong = errors.New("dialogue exceeds maximum length")
	ErrLLMUnavailable  = errors.New("language model unavailable")
)
