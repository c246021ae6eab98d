// internal/common/http/response.go
package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// DefaultMaxBodyBytes caps request bodies read by ReadBody.
const DefaultMaxBodyBytes = 1 << 20

// WriteJSON writes data with the given status.
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// ReadBody reads at most limit bytes of the request body. An empty body
// reads as "{}".
func ReadBody(r *http.Request, limit int64) ([]byte, error) {
	if limit <= 0 {
		limit = DefaultMaxBodyBytes
	}
	if r.Body == nil {
		return []byte("{}"), nil
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if int64(len(body)) > limit {
		return nil, fmt.Errorf("request body exceeds %d bytes", limit)
	}
	if len(body) == 0 {
		return []byte("{}"), nil
	}
	return body, nil
}
