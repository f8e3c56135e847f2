package workhub

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/iancoleman/orderedmap"
)

// Response is the response of a WorkHub request, returned as-is
// regardless of its status code
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// OK returns true if the response has a 2xx status code
func (r Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode <= 299
}

// Decode unmarshals the response body into v
func (r Response) Decode(v interface{}) error {
	return json.Unmarshal(r.Body, v)
}

// Record decodes the response body as a single record
func (r Response) Record() (Record, error) {
	var record Record
	if err := r.Decode(&record); err != nil {
		return Record{}, err
	}
	return record, nil
}

// Records decodes the response body as a list of records,
// a single document is returned as a list of one
func (r Response) Records() ([]Record, error) {
	if body := bytes.TrimSpace(r.Body); len(body) > 0 && body[0] != '[' {
		record, err := r.Record()
		if err != nil {
			return nil, err
		}
		return []Record{record}, nil
	}

	var records []Record
	if err := r.Decode(&records); err != nil {
		return nil, err
	}
	return records, nil
}

// Record is a WorkHub resource record
// Its fields are owned by the server and kept in the order they were received
type Record struct {
	*orderedmap.OrderedMap
}

// NewRecord creates a new empty record
func NewRecord() Record {
	return Record{orderedmap.New()}
}

// ParseRecord parses a JSON document into a record
func ParseRecord(data []byte) (Record, error) {
	var record Record
	if err := json.Unmarshal(data, &record); err != nil {
		return Record{}, err
	}
	return record, nil
}

// UnmarshalJSON unmarshals a JSON object into the record
func (r *Record) UnmarshalJSON(data []byte) error {
	r.OrderedMap = orderedmap.New()
	return r.OrderedMap.UnmarshalJSON(data)
}

// MarshalJSON marshals the record into a JSON object
func (r Record) MarshalJSON() ([]byte, error) {
	if r.OrderedMap == nil {
		return []byte("{}"), nil
	}
	return r.OrderedMap.MarshalJSON()
}

var recordIDKeys = []string{"ID", "id", "_id"}

// ID returns the record id, or an empty string if it has none
func (r Record) ID() string {
	for _, key := range recordIDKeys {
		if value, ok := r.Field(key); ok {
			return value
		}
	}
	return ""
}

// Field returns the string representation of a scalar field
func (r Record) Field(key string) (string, bool) {
	if r.OrderedMap == nil {
		return "", false
	}
	value, ok := r.Get(key)
	if !ok {
		return "", false
	}
	switch v := value.(type) {
	case nil:
		return "", true
	case string:
		return v, true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(v), true
	}
	return "", false
}
