package server

import (
	"fmt"
	"net/http"
	"time"

	"go-taskhub/internal/core/config"
)

// New builds the API's http.Server from the HTTP section of the config.
func New(h config.HTTP, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:           fmt.Sprintf("%s:%d", h.Host, h.Port),
		Handler:        handler,
		ReadTimeout:    time.Duration(h.ReadTimeoutSec) * time.Second,
		WriteTimeout:   time.Duration(h.WriteTimeoutSec) * time.Second,
		IdleTimeout:    time.Duration(h.IdleTimeoutSec) * time.Second,
		MaxHeaderBytes: 1 << 20, // 1MB
	}
}
