package propertyapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	apperrors "homevest-listings/internal/errors"
	"homevest-listings/internal/models"
	"homevest-listings/pkg/logger"
)

// GetProperty fetches a single property record. One attempt, no retry.
func (c *Client) GetProperty(ctx context.Context, token, id string) (models.PropertyResult, error) {
	if id == "" {
		return nil, apperrors.NewValidationError("property id is required")
	}
	body, err := c.get(ctx, c.createURL()+"/"+url.PathEscape(id), token)
	if err != nil {
		return nil, err
	}

	var property models.PropertyResult
	if err := json.Unmarshal(body, &property); err != nil {
		logger.GlobalLogger.Errorf("Failed to decode property response: id=%s, response=%s, error=%v", id, string(body), err)
		return nil, apperrors.NewAppError(apperrors.ErrUnclassified, fmt.Sprintf("failed to decode property response: %v", err), apperrors.MsgLoadFailed, apperrors.ErrCodeLoadFailed, http.StatusOK, err)
	}
	return property, nil
}

// ListProperties fetches every property visible to the token's owner.
func (c *Client) ListProperties(ctx context.Context, token string) ([]models.PropertyResult, error) {
	body, err := c.get(ctx, c.createURL(), token)
	if err != nil {
		return nil, err
	}

	var properties []models.PropertyResult
	if err := json.Unmarshal(body, &properties); err != nil {
		logger.GlobalLogger.Errorf("Failed to decode property list response: response=%s, error=%v", string(body), err)
		return nil, apperrors.NewAppError(apperrors.ErrUnclassified, fmt.Sprintf("failed to decode property list: %v", err), apperrors.MsgLoadFailed, apperrors.ErrCodeLoadFailed, http.StatusOK, err)
	}
	return properties, nil
}

func (c *Client) get(ctx context.Context, target, token string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrUnclassified, fmt.Sprintf("failed to create request: %v", err), apperrors.MsgLoadFailed, apperrors.ErrCodeLoadFailed, 0, err)
	}
	setCommonHeaders(req, token)

	body, status, err := c.do(req)
	if err != nil {
		logger.GlobalLogger.Errorf("Failed to send property request: url=%s, error=%s", target, technicalMessage(err))
		return nil, err
	}
	if status != http.StatusOK {
		appErr := apperrors.FromReadResponse(status, body)
		logger.GlobalLogger.Errorf("Property request failed: url=%s, error=%s", target, appErr.TechnicalMessage)
		return nil, appErr
	}
	return body, nil
}
