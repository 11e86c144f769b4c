// internal/webutil/request.go
package webutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"leetcode_journey/internal/model"
)

// maxBodyBytes はリクエストボディの上限
const maxBodyBytes = 1 << 20

// DecodeJSONBody はリクエストボディをデコードします
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if r.Body == nil || r.Body == http.NoBody {
		return fmt.Errorf("%w: no JSON data provided", model.ErrInvalidInput)
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: no JSON data provided", model.ErrInvalidInput)
		}
		return fmt.Errorf("%w: invalid JSON: %v", model.ErrInvalidInput, err)
	}
	return nil
}
