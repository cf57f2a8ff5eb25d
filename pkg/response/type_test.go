package response_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"council-archive/pkg/response"
)

func TestNewPage(t *testing.T) {
	tests := []struct {
		name                 string
		total, limit, offset int
		wantMore             bool
	}{
		{"empty", 0, 100, 0, false},
		{"single window", 3, 100, 0, false},
		{"exact fit", 4, 2, 2, false},
		{"more left", 5, 2, 2, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := response.NewPage(tt.total, tt.limit, tt.offset)
			assert.Equal(t, tt.wantMore, p.More)
			assert.Equal(t, tt.total, p.Total)
		})
	}
}

func TestPageEmbedsFlat(t *testing.T) {
	payload := struct {
		Items []string `json:"items"`
		response.Page
	}{Items: []string{"a"}, Page: response.NewPage(1, 10, 0)}

	b, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":["a"],"total":1,"limit":10,"offset":0,"has_more":false}`, string(b))
}

func TestRespOmitsEmptyData(t *testing.T) {
	b, err := json.Marshal(response.Resp{ErrorCode: 401, Message: "Unauthorized"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"error_code":401,"message":"Unauthorized"}`, string(b))
}
