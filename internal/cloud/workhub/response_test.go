package workhub

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/sa67/workhub-cli/internal/utils/test/assert"
)

func TestResponse(t *testing.T) {
	t.Run("Should report whether the status code is successful", func(t *testing.T) {
		for _, tc := range []struct {
			status int
			ok     bool
		}{
			{http.StatusOK, true},
			{http.StatusCreated, true},
			{http.StatusNoContent, true},
			{http.StatusMultipleChoices, false},
			{http.StatusBadRequest, false},
			{http.StatusInternalServerError, false},
		} {
			assert.Equal(t, tc.ok, Response{StatusCode: tc.status}.OK())
		}
	})

	t.Run("Should decode a list of records in the order they were sent", func(t *testing.T) {
		res := Response{Body: []byte(`[{"ID":1,"title":"barista","wages":350.5},{"ID":2,"title":"cashier"}]`)}

		records, err := res.Records()
		assert.Nil(t, err)
		assert.Equal(t, 2, len(records))

		assert.Equal(t, []string{"ID", "title", "wages"}, records[0].Keys())
		assert.Equal(t, "1", records[0].ID())

		wages, ok := records[0].Field("wages")
		assert.True(t, ok, "expected wages field")
		assert.Equal(t, "350.5", wages)

		out, err := json.Marshal(records[1])
		assert.Nil(t, err)
		assert.Equal(t, `{"ID":2,"title":"cashier"}`, string(out))
	})

	t.Run("Should decode a single document as a list of one", func(t *testing.T) {
		records, err := Response{Body: []byte(` {"id":"abc123"}`)}.Records()
		assert.Nil(t, err)
		assert.Equal(t, 1, len(records))
		assert.Equal(t, "abc123", records[0].ID())
	})

	t.Run("Should fail to decode a body that is not json", func(t *testing.T) {
		_, err := Response{Body: []byte(`404 page not found`)}.Records()
		assert.NotNil(t, err)
	})
}

func TestRecord(t *testing.T) {
	t.Run("Should marshal an empty record as an empty object", func(t *testing.T) {
		out, err := json.Marshal(Record{})
		assert.Nil(t, err)
		assert.Equal(t, `{}`, string(out))
	})

	t.Run("Should report no field for a nested value", func(t *testing.T) {
		record, err := ParseRecord([]byte(`{"skills":["go"],"active":true}`))
		assert.Nil(t, err)

		_, ok := record.Field("skills")
		assert.False(t, ok, "expected no scalar field")

		active, ok := record.Field("active")
		assert.True(t, ok, "expected active field")
		assert.Equal(t, "true", active)

		assert.Equal(t, "", record.ID())
	})
}

func TestParseResponseError(t *testing.T) {
	jsonHeader := http.Header{"Content-Type": []string{"application/json; charset=utf-8"}}

	for _, tc := range []struct {
		description string
		res         Response
		expected    ServerError
	}{
		{
			description: "With a json error body",
			res:         Response{StatusCode: 409, Header: jsonHeader, Body: []byte(`{"error":"Email is already registered"}`)},
			expected:    ServerError{409, "Email is already registered"},
		},
		{
			description: "With a json body that has no error",
			res:         Response{StatusCode: 500, Header: jsonHeader, Body: []byte(`{"message":"oops"}`)},
			expected:    ServerError{500, "500 Internal Server Error"},
		},
		{
			description: "With an invalid json body",
			res:         Response{StatusCode: 502, Header: jsonHeader, Body: []byte(`bad gateway`)},
			expected:    ServerError{502, "bad gateway"},
		},
		{
			description: "With a text body",
			res:         Response{StatusCode: 404, Header: http.Header{"Content-Type": []string{"text/plain"}}, Body: []byte(`404 page not found`)},
			expected:    ServerError{404, "404 Not Found"},
		},
		{
			description: "With no body",
			res:         Response{StatusCode: 401, Header: jsonHeader},
			expected:    ServerError{401, "401 Unauthorized"},
		},
	} {
		t.Run(tc.description, func(t *testing.T) {
			err := parseResponseError(tc.res)

			serverErr, ok := err.(ServerError)
			assert.True(t, ok, "expected a server error but got: %T", err)
			assert.Equal(t, tc.expected.StatusCode, serverErr.StatusCode)
			assert.Equal(t, tc.expected.Message, serverErr.Message)
		})
	}
}
