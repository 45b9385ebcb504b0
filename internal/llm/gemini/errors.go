package gemini

import "fmt"

// HTTPError carries a non-2xx upstream status with a truncated body for
// logging.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("gemini: upstream status %d: %s", e.StatusCode, e.Body)
}
