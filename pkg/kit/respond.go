package kit

import (
	"encoding/json"
	"io"
)

func WriteJSON(w io.Writer, v any) error {
	return json.NewEncoder(w).Encode(v)
}
