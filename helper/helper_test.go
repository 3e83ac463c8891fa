package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/metacode0602/open-mcp-sub000/models"
)

func TestUnderscore(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Name", "name"},
		{"AppID", "app_id"},
		{"ProofURL", "proof_url"},
		{"PeriodKey", "period_key"},
		{"HTTPServer", "http_server"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Underscore(tt.in))
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total int64
		limit int
		want  int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
		{25, 0, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TotalPages(tt.total, tt.limit), "total=%d limit=%d", tt.total, tt.limit)
	}
}

func TestGetStatusCode(t *testing.T) {
	h := &HTTPHelper{}

	assert.Equal(t, 200, h.GetStatusCode(nil))
	assert.Equal(t, 404, h.GetStatusCode(models.ErrorNotFound{Message: "app not found"}))
	assert.Equal(t, 409, h.GetStatusCode(models.ErrorConflict{Message: "duplicate"}))
	assert.Equal(t, 401, h.GetStatusCode(models.ErrorUnauthorized{Message: "invalid credentials"}))
	assert.Equal(t, 400, h.GetStatusCode(models.ErrorBadRequest{Message: "bad input"}))
	assert.Equal(t, 500, h.GetStatusCode(assert.AnError))
}
