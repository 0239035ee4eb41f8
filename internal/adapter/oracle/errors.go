package oracle

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"naira-rate-service/internal/domain/ports"
)

// APIError carries the upstream HTTP failure details from an oracle backend.
type APIError struct {
	StatusCode int
	Code       int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("oracle API error (status %d): %s", e.StatusCode, e.Message)
}

// IsRateLimited reports whether err carries a throttling signal: a 429 status
// or error code, or a message mentioning "429" or "quota". Only these errors
// are worth retrying; everything else fails fast so the caller can fall back.
func IsRateLimited(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, ports.ErrOracleRateLimited) {
		return true
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode == http.StatusTooManyRequests || apiErr.Code == http.StatusTooManyRequests {
			return true
		}
	}

	message := strings.ToLower(err.Error())
	return strings.Contains(message, "429") || strings.Contains(message, "quota")
}
