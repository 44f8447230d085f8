package extraction

import "errors"

// ErrExtractorRequired is returned when an extraction client is not
// provided.
var ErrExtractorRequired = errors.New("entity extractor required")
