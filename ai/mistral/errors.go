package mistral

import "errors"

// ErrEmptyResponse is returned when the service answers without any
// completion choice.
var ErrEmptyResponse = errors.New("extraction service returned no choices")
