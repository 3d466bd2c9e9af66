package handlers

import (
	"encoding/json"
	"net/http"
)

// writeJSON leaves HTML unescaped; chat replies are HTML fragments.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.Encode(data)
}
