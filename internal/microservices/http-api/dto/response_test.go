package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewSuccessResponse(t *testing.T) {
	resp := NewSuccessResponse("")
	assert.Equal(t, CodeOK, resp.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, "Operation successful", resp.Message)

	resp = NewSuccessResponse("Post liked successfully")
	assert.Equal(t, "Post liked successfully", resp.Message)
}

func TestNewErrorResponse(t *testing.T) {
	resp := NewErrorResponse(CodeNotFound, "Post not found")
	assert.Equal(t, ErrorCode(404), resp.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, "Post not found", resp.Message)
}

func TestErrorCode_Values(t *testing.T) {
	assert.EqualValues(t, 401, CodeUnauthenticated)
	assert.EqualValues(t, 403, CodeUnauthorized)
	assert.EqualValues(t, 400, CodeBadUserInput)
	assert.EqualValues(t, 404, CodeNotFound)
	assert.EqualValues(t, 409, CodeAlreadyExists)
	assert.EqualValues(t, 500, CodeInternalServerError)
	assert.Equal(t, "ALREADY_EXISTS", CodeAlreadyExists.String())
}

func TestFormatTime(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	ts := time.Date(2024, 3, 5, 10, 4, 5, 123456789, loc)
	assert.Equal(t, "2024-03-05T09:04:05.123Z", FormatTime(ts))
}
