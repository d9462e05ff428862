package http

import (
	"encoding/json"
	"net/http"

	"github.com/GabrielRod726/hardware-diagnostic/internal/domain"
	"github.com/GabrielRod726/hardware-diagnostic/internal/report"
	"github.com/GabrielRod726/hardware-diagnostic/internal/score"
)

// DiagnosticResponse is the /api/diagnostic payload: the raw snapshot
// alongside its evaluation.
type DiagnosticResponse struct {
	Snapshot *domain.Snapshot `json:"snapshot"`
	Result   score.Result     `json:"result"`
}

func (s *Server) AddDiagnosticRoutes() {
	s.r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	s.r.Get("/api/diagnostic", func(w http.ResponseWriter, r *http.Request) {
		snap, err := s.collect(r.Context(), s.opts)
		if err != nil {
			s.log.Error("collection failed", "err", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		res := score.Evaluate(*snap)
		s.writeJSON(w, DiagnosticResponse{Snapshot: snap, Result: res})
	})

	s.r.Get("/api/score", func(w http.ResponseWriter, r *http.Request) {
		snap, err := s.collect(r.Context(), s.opts)
		if err != nil {
			s.log.Error("collection failed", "err", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		s.writeJSON(w, score.Evaluate(*snap))
	})

	s.r.Get("/report", func(w http.ResponseWriter, r *http.Request) {
		snap, err := s.collect(r.Context(), s.opts)
		if err != nil {
			s.log.Error("collection failed", "err", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		res := score.Evaluate(*snap)
		text := report.Compose(report.New(false), snap, res, true)

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte(text))
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("encoding response", "err", err)
	}
}
