package webutil

import (
	"encoding/json"
	"fmt"
	"net/http"

	"scribe_tree_writer/internal/model"
)

// maxBodyBytes はリクエストボディの上限
const maxBodyBytes = 1 << 20

// DecodeJSONBody はリクエストボディをデコードします。未知のフィールドはエラー。
func DecodeJSONBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return model.ErrInvalidInput
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
	}
	return nil
}
