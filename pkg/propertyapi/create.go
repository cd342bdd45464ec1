package propertyapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	apperrors "homevest-listings/internal/errors"
	"homevest-listings/internal/models"
	"homevest-listings/pkg/logger"
	"homevest-listings/pkg/metrics"
)

// CreateProperty validates and encodes the listing, then submits it. A 503 is
// retried with the same body up to MaxRetries times, RetryDelay apart. Every
// other failure is returned immediately as an *errors.AppError.
//
// ctx bounds the whole submission, including the wait between retries.
func (c *Client) CreateProperty(ctx context.Context, input *models.PropertyListingInput, token string) (models.PropertyResult, error) {
	start := time.Now()

	payload, err := c.Prepare(ctx, input)
	if err != nil {
		logger.GlobalLogger.Errorf("Property listing rejected before submission: error=%s", technicalMessage(err))
		metrics.SubmissionDuration.WithLabelValues("invalid").Observe(time.Since(start).Seconds())
		return nil, err
	}

	url := c.createURL()
	maxAttempts := c.MaxAttempts()
	for attempt := 1; ; attempt++ {
		result, err := c.send(ctx, url, payload, token)
		if err == nil {
			metrics.SubmissionAttemptsTotal.WithLabelValues("success").Inc()
			metrics.SubmissionDuration.WithLabelValues("success").Observe(time.Since(start).Seconds())
			logger.GlobalLogger.Printf("Property created (attempt %d/%d): url=%s", attempt, maxAttempts, url)
			return result, nil
		}

		metrics.SubmissionAttemptsTotal.WithLabelValues(outcome(err)).Inc()
		logger.GlobalLogger.Errorf("Property creation failed (attempt %d/%d): url=%s, error=%s", attempt, maxAttempts, url, technicalMessage(err))

		if !errors.Is(err, apperrors.ErrServiceUnavailable) || attempt >= maxAttempts {
			metrics.SubmissionDuration.WithLabelValues("failure").Observe(time.Since(start).Seconds())
			return nil, err
		}

		metrics.SubmissionRetriesTotal.Inc()
		logger.GlobalLogger.Printf("Retrying property creation in %v (attempt %d/%d)", c.retryDelay, attempt+1, maxAttempts)
		if err := sleep(ctx, c.retryDelay); err != nil {
			metrics.SubmissionDuration.WithLabelValues("failure").Observe(time.Since(start).Seconds())
			return nil, apperrors.NewNetworkError(err)
		}
	}
}

// send issues one attempt and classifies its outcome
func (c *Client) send(ctx context.Context, url string, payload *EncodedRequestBody, token string) (models.PropertyResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload.Body))
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrUnclassified, fmt.Sprintf("failed to create request: %v", err), apperrors.MsgCreateFailed, apperrors.ErrCodeCreateFailed, 0, err)
	}
	req.Header.Set("Content-Type", payload.ContentType)
	setCommonHeaders(req, token)

	body, status, err := c.do(req)
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, apperrors.FromResponse(status, body)
	}
	return decodeResult(status, body)
}

func (c *Client) do(req *http.Request) ([]byte, int, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, apperrors.NewNetworkError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, apperrors.NewNetworkError(fmt.Errorf("failed to read response body: %w", err))
	}
	return body, resp.StatusCode, nil
}

func setCommonHeaders(req *http.Request, token string) {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Accept", "application/json")
}

func decodeResult(status int, body []byte) (models.PropertyResult, error) {
	result := models.PropertyResult{}
	if len(bytes.TrimSpace(body)) == 0 {
		return result, nil
	}
	if err := json.Unmarshal(body, &result); err != nil {
		technical := fmt.Sprintf("failed to decode response: status=%d, response=%s, error=%v", status, string(body), err)
		return nil, apperrors.NewAppError(apperrors.ErrUnclassified, technical, apperrors.MsgCreateFailed, apperrors.ErrCodeCreateFailed, status, err)
	}
	return result, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func outcome(err error) string {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Code != "" {
		return strings.ToLower(appErr.Code)
	}
	return "error"
}

func technicalMessage(err error) string {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.TechnicalMessage != "" {
		return appErr.TechnicalMessage
	}
	return err.Error()
}
