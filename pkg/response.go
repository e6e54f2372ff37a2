package pkg

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"
)

var ContentType = struct {
	JSON string
	Text string
}{
	JSON: "application/json",
	Text: "text/plain; charset=utf-8",
}

func WriteJSON(w http.ResponseWriter, statusCode int, payload []byte) {
	writeResponse(w, ContentType.JSON, payload, statusCode)
}

func WriteJSONOK(w http.ResponseWriter, payload []byte) {
	writeResponse(w, ContentType.JSON, payload, http.StatusOK)
}

// WriteJSONError responds with {"error": message}.
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	payload, _ := json.Marshal(struct {
		Error string `json:"error"`
	}{Error: message})
	writeResponse(w, ContentType.JSON, payload, statusCode)
}

func WriteTextOK(w http.ResponseWriter, message string) {
	writeResponse(w, ContentType.Text, []byte(message), http.StatusOK)
}

func writeResponse(w http.ResponseWriter, contentType string, message []byte, statusCode int) {
	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}

	w.WriteHeader(statusCode)
	if _, err := w.Write(message); err != nil {
		log.Errorf("failed to write response [%d bytes]: %s", len(message), err)
	}
}
