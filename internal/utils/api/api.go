package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// set of supported api header keys
const (
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
)

// set of supported api media types
const (
	MediaTypeJSON = "application/json"
)

// RequestOptions are options to configure an *http.Request
type RequestOptions struct {
	Body   io.Reader
	Header http.Header
}

// JSONRequestOptions returns RequestOptions configured to send the provided payload as JSON
func JSONRequestOptions(payload interface{}) (RequestOptions, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return RequestOptions{}, err
	}
	return RequestOptions{
		Body:   bytes.NewReader(body),
		Header: http.Header{HeaderContentType: []string{MediaTypeJSON}},
	}, nil
}

// AuthorizationValue joins the token scheme and the token into an Authorization header value
func AuthorizationValue(scheme, token string) string {
	return fmt.Sprintf("%s %s", scheme, token)
}
