package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromResponse(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		expectedErr error
		expectedMsg string
	}{
		{
			name:        "bad_request_with_message_array",
			status:      http.StatusBadRequest,
			body:        `{"message":["title is required","price must be positive"]}`,
			expectedErr: ErrServerRejected,
			expectedMsg: "title is required\nprice must be positive",
		},
		{
			name:        "bad_request_with_message_string",
			status:      http.StatusBadRequest,
			body:        `{"message":"address is invalid"}`,
			expectedErr: ErrServerRejected,
			expectedMsg: "address is invalid",
		},
		{
			name:        "bad_request_with_errors_objects",
			status:      http.StatusBadRequest,
			body:        `{"errors":[{"msg":"bad latitude"},{"message":"bad longitude"}]}`,
			expectedErr: ErrServerRejected,
			expectedMsg: "bad latitude\nbad longitude",
		},
		{
			name:        "bad_request_without_messages",
			status:      http.StatusBadRequest,
			body:        `not json`,
			expectedErr: ErrServerRejected,
			expectedMsg: MsgInvalidRequest,
		},
		{
			name:        "unauthorized",
			status:      http.StatusUnauthorized,
			body:        `{"message":"jwt expired"}`,
			expectedErr: ErrAuthRequired,
			expectedMsg: MsgAuthRequired,
		},
		{
			name:        "payload_too_large",
			status:      http.StatusRequestEntityTooLarge,
			expectedErr: ErrPayloadTooLarge,
			expectedMsg: MsgPayloadTooLarge,
		},
		{
			name:        "service_unavailable",
			status:      http.StatusServiceUnavailable,
			expectedErr: ErrServiceUnavailable,
			expectedMsg: MsgServiceUnavailable,
		},
		{
			name:        "internal_server_error",
			status:      http.StatusInternalServerError,
			body:        `{"message":"boom"}`,
			expectedErr: ErrUnclassified,
			expectedMsg: MsgCreateFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := FromResponse(tt.status, []byte(tt.body))
			require.ErrorIs(t, appErr, tt.expectedErr)
			assert.Equal(t, tt.expectedMsg, appErr.Error())
			assert.Equal(t, tt.status, appErr.HTTPStatus)
		})
	}
}

func TestServerMessages_ErrorField(t *testing.T) {
	assert.Equal(t, []string{"token missing"}, ServerMessages([]byte(`{"error":"token missing"}`)))
	assert.Empty(t, ServerMessages([]byte(`{"message":""}`)))
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("dial tcp: connection refused")
	err := NewNetworkError(cause)

	require.ErrorIs(t, err, ErrNetwork)
	require.ErrorIs(t, err, cause)
	assert.Equal(t, MsgNetworkError, err.Error())
}

func TestMapError(t *testing.T) {
	notFound := fmt.Errorf("property abc: %w", ErrNotFound)
	appErr := MapError(notFound)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPStatus)
	assert.Equal(t, ErrCodePropertyNotFound, appErr.Code)

	existing := NewValidationError("title is required")
	appErr = MapError(fmt.Errorf("wrapped: %w", existing))
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
	assert.Equal(t, "title is required", appErr.UserMessage)
	assert.Zero(t, existing.HTTPStatus)

	rejected := FromResponse(http.StatusUnauthorized, nil)
	assert.Same(t, rejected, MapError(rejected))

	appErr = MapError(errors.New("disk on fire"))
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPStatus)
	assert.Equal(t, MsgInternalError, appErr.UserMessage)

	assert.Nil(t, MapError(nil))
}
