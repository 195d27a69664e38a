//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func AssertSuccessResponse(t *testing.T, rec *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, rec.Code, "unexpected status, body: %s", rec.Body.String()) {
		return
	}

	if target != nil {
		err := json.Unmarshal(rec.Body.Bytes(), target)
		assert.NoError(t, err, "failed to decode response JSON: %s", rec.Body.String())
	}
}

func AssertErrorResponse(t *testing.T, rec *httptest.ResponseRecorder, expectedStatus int, expectedMsg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, rec.Code, "unexpected status, body: %s", rec.Body.String())

	var body struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	err := json.Unmarshal(rec.Body.Bytes(), &body)
	assert.NoError(t, err, "failed to decode error response JSON: %s", rec.Body.String())

	if expectedMsg != "" {
		assert.Contains(t, body.Error.Message, expectedMsg)
	}
}
