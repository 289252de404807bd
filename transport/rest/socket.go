package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// socketConfig serves /config.js, which tells the game pages where the websocket server listens.
type socketConfig struct {
	logger *slog.Logger
	port   string
}

func (that *socketConfig) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	port, err := json.Marshal(that.port)
	if err != nil {
		that.logger.With("method", "ServeHTTP").Error("failed to encode socket port", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = w.Write([]byte("window.SOCKET_PORT = " + string(port) + ";\n"))
}
