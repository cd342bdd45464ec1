package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
)

// FromResponse classifies a non-2xx response from the property service.
func FromResponse(status int, body []byte) *AppError {
	technicalMessage := fmt.Sprintf("status=%d, response=%s", status, strings.TrimSpace(string(body)))

	switch status {
	case http.StatusBadRequest:
		userMessage := MsgInvalidRequest
		if msgs := ServerMessages(body); len(msgs) > 0 {
			userMessage = strings.Join(msgs, "\n")
		}
		return NewAppError(ErrServerRejected, technicalMessage, userMessage, ErrCodeInvalidRequest, status, nil)
	case http.StatusUnauthorized:
		return NewAppError(ErrAuthRequired, technicalMessage, MsgAuthRequired, ErrCodeAuthRequired, status, nil)
	case http.StatusRequestEntityTooLarge:
		return NewAppError(ErrPayloadTooLarge, technicalMessage, MsgPayloadTooLarge, ErrCodePayloadTooLarge, status, nil)
	case http.StatusServiceUnavailable:
		return NewAppError(ErrServiceUnavailable, technicalMessage, MsgServiceUnavailable, ErrCodeServiceUnavailable, status, nil)
	default:
		return NewAppError(ErrUnclassified, technicalMessage, MsgCreateFailed, ErrCodeCreateFailed, status, nil)
	}
}

// FromReadResponse classifies a non-2xx response to a property lookup.
func FromReadResponse(status int, body []byte) *AppError {
	switch status {
	case http.StatusNotFound:
		technicalMessage := fmt.Sprintf("status=%d, response=%s", status, strings.TrimSpace(string(body)))
		return NewAppError(ErrNotFound, technicalMessage, MsgPropertyNotFound, ErrCodePropertyNotFound, status, nil)
	case http.StatusBadRequest, http.StatusUnauthorized, http.StatusServiceUnavailable:
		return FromResponse(status, body)
	default:
		appErr := FromResponse(status, body)
		appErr.UserMessage = MsgLoadFailed
		appErr.Code = ErrCodeLoadFailed
		return appErr
	}
}

// ServerMessages pulls human-readable messages out of an error body. It
// understands `message` as a string or array, `errors` as an array of strings
// or of objects with `message`/`msg`, and a bare `error` string.
func ServerMessages(body []byte) []string {
	if !gjson.ValidBytes(body) {
		return nil
	}
	doc := gjson.ParseBytes(body)

	var msgs []string
	collect := func(r gjson.Result) {
		switch {
		case r.IsArray():
			r.ForEach(func(_, item gjson.Result) bool {
				if item.IsObject() {
					if m := item.Get("message"); m.Exists() {
						item = m
					} else {
						item = item.Get("msg")
					}
				}
				if s := strings.TrimSpace(item.String()); s != "" {
					msgs = append(msgs, s)
				}
				return true
			})
		case r.Type == gjson.String:
			if s := strings.TrimSpace(r.String()); s != "" {
				msgs = append(msgs, s)
			}
		}
	}

	collect(doc.Get("message"))
	if len(msgs) == 0 {
		collect(doc.Get("errors"))
	}
	if len(msgs) == 0 {
		collect(doc.Get("error"))
	}
	return msgs
}

// MapError converts a technical error into a user-friendly AppError.
func MapError(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPStatus != 0 {
			return appErr
		}
		// Errors raised before any response carry no status of their own.
		mapped := *appErr
		mapped.HTTPStatus = statusForKind(appErr.Kind)
		return &mapped
	}

	technicalMessage := err.Error()

	switch {
	case errors.Is(err, ErrNotFound):
		return NewAppError(ErrNotFound, technicalMessage, MsgPropertyNotFound, ErrCodePropertyNotFound, http.StatusNotFound, err)
	case errors.Is(err, ErrValidation):
		return NewAppError(ErrValidation, technicalMessage, technicalMessage, ErrCodeValidation, http.StatusBadRequest, err)
	default:
		return NewAppError(ErrUnclassified, technicalMessage, MsgInternalError, ErrCodeInternal, http.StatusInternalServerError, err)
	}
}

func statusForKind(kind error) int {
	switch kind {
	case ErrValidation, ErrServerRejected:
		return http.StatusBadRequest
	case ErrAuthRequired:
		return http.StatusUnauthorized
	case ErrNotFound:
		return http.StatusNotFound
	case ErrPayloadTooLarge:
		return http.StatusRequestEntityTooLarge
	case ErrRateLimited:
		return http.StatusTooManyRequests
	case ErrServiceUnavailable:
		return http.StatusServiceUnavailable
	case ErrNetwork:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
