package sources

import (
	"errors"
	"fmt"
)

// Transcript failure taxonomy. All are terminal for the call.
var (
	ErrPageParse           = errors.New("transcript data not found for this video")
	ErrTranscriptsDisabled = errors.New("no captions available for this video")
	ErrTooManyRequests     = errors.New("youtube is rate limiting this IP (captcha required)")
)

// VideoUnavailableError is returned when the player response marks the video
// unplayable (private, removed, age-restricted, region-locked, ...).
type VideoUnavailableError struct {
	VideoID string
	Status  string
	Reason  string
}

func (e *VideoUnavailableError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("video %s is unavailable: %s", e.VideoID, e.Reason)
	}
	return fmt.Sprintf("video %s is unavailable (%s)", e.VideoID, e.Status)
}

// Is allows for error checking with errors.Is().
func (e *VideoUnavailableError) Is(target error) bool {
	_, ok := target.(*VideoUnavailableError)
	return ok
}

// NetworkError wraps a failed request to the platform: either a transport
// error (Err set) or a non-2xx response (StatusCode set).
type NetworkError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("request to %s failed: status %d", e.URL, e.StatusCode)
}

func (e *NetworkError) Unwrap() error { return e.Err }
