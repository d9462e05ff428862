package http

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// newRequestLogger builds the access-log middleware. Requests to any
// of the muted paths produce no log line, which keeps probes like
// /healthz out of the output.
func newRequestLogger(mutedPaths ...string) func(next http.Handler) http.Handler {
	muted := make(map[string]struct{}, len(mutedPaths))
	for _, p := range mutedPaths {
		muted[p] = struct{}{}
	}

	base := &middleware.DefaultLogFormatter{
		Logger:  log.New(os.Stdout, "", log.LstdFlags),
		NoColor: false,
	}

	return middleware.RequestLogger(&mutedPathFormatter{
		muted: muted,
		base:  base,
	})
}

type mutedPathFormatter struct {
	muted map[string]struct{}
	base  middleware.LogFormatter
}

func (f *mutedPathFormatter) NewLogEntry(r *http.Request) middleware.LogEntry {
	if _, ok := f.muted[r.URL.Path]; ok {
		return quietLogEntry{}
	}
	return f.base.NewLogEntry(r)
}

type quietLogEntry struct{}

func (quietLogEntry) Write(status, bytes int, header http.Header, elapsed time.Duration, extra interface{}) {
}

func (quietLogEntry) Panic(v interface{}, stack []byte) {}
