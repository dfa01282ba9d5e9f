package service

import (
	"log/slog"
	"os"
	"sync"
)

var (
	fontOnce  sync.Once
	fontBytes []byte
)

// LoadReportFont reads the configured report TTF once per process and caches
// the bytes for the lifetime of the server. An empty path or a read failure
// yields nil, which selects the built-in core font downstream.
func LoadReportFont(path string) []byte {
	if path == "" {
		return nil
	}
	fontOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			slog.Warn("report font unavailable, using core font", "path", path, "error", err)
			return
		}
		fontBytes = data
		slog.Info("report font loaded", "path", path, "bytes", len(data))
	})
	return fontBytes
}
