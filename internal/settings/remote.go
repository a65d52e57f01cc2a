package settings

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"resty.dev/v3"
)

// DefaultRemoteRetryAttempts is the number of retries for transient
// failures when fetching preferences from the user-settings service.
const DefaultRemoteRetryAttempts uint = 2

// RemotePacingReader fetches pacing preferences from a user-settings
// service over HTTP. Deployments that keep user preferences in a separate
// service use this instead of DBPacingReader.
type RemotePacingReader struct {
	httpClient       *resty.Client
	maxRetryAttempts uint
}

// NewRemotePacingReader creates a reader against the service at baseURL.
func NewRemotePacingReader(baseURL string, retryAttempts uint) *RemotePacingReader {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("Accept", "application/json")
	client.SetTimeout(5 * time.Second)

	return &RemotePacingReader{
		httpClient:       client,
		maxRetryAttempts: retryAttempts,
	}
}

// Close releases the underlying HTTP client.
func (r *RemotePacingReader) Close() error {
	return r.httpClient.Close()
}

type pacingResponse struct {
	PacingMode float64 `json:"pacingMode"`
}

// PacingMode implements PacingReader. A 404 from the settings service
// means no stored preference and maps to the standard pace.
func (r *RemotePacingReader) PacingMode(ctx context.Context, userID string) (float64, error) {
	var pacing float64
	err := retry.Do(
		func() error {
			value, err := r.fetch(ctx, userID)
			if err != nil {
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			pacing = value
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(r.maxRetryAttempts+1),
	)
	if err != nil {
		return 0, fmt.Errorf("fetch pacing mode for %s > %w", userID, err)
	}
	return pacing, nil
}

func (r *RemotePacingReader) fetch(ctx context.Context, userID string) (float64, error) {
	var body pacingResponse
	response, err := r.httpClient.R().
		SetContext(ctx).
		SetPathParam("userID", userID).
		SetResult(&body).
		Get("/users/{userID}/pacing")
	if err != nil {
		return 0, fmt.Errorf("httpClient.Get(pacing) > %w", err)
	}
	if response.StatusCode() == 404 {
		return 0, nil
	}
	if response.IsError() {
		return 0, fmt.Errorf("response error %d from settings service", response.StatusCode())
	}
	return clampPacing(body.PacingMode), nil
}

// isRetryableError reports whether the failure is worth another attempt.
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	if strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "i/o timeout") {
		return true
	}
	// 5xx from the settings service.
	if strings.Contains(errStr, "response error 5") {
		return true
	}
	return false
}
