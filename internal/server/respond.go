package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"sportreg/internal/domain"
)

const msgInternal = "Something went wrong, please try again"

// writeJSON writes payload with the given status code.
func writeJSON(w http.ResponseWriter, status int, payload any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(payload)
}

func (s *Server) notify(w http.ResponseWriter, r *http.Request, status int, n domain.Notification) {
	if err := writeJSON(w, status, n); err != nil {
		s.log(r).Debug("write response", zap.Error(err))
	}
}

// reject answers a failed form action. A rejection's message goes to the
// user with the given status; anything else is logged and hidden behind a
// generic 500.
func (s *Server) reject(w http.ResponseWriter, r *http.Request, status int, err error) {
	var rej *domain.Rejection
	if errors.As(err, &rej) {
		if err != error(rej) {
			// Wrapped rejections carry a cause worth keeping.
			s.log(r).Warn("request rejected", zap.Error(err))
		}
		s.notify(w, r, status, domain.Error(rej.Message))
		return
	}
	s.log(r).Error("request failed", zap.Error(err))
	s.notify(w, r, http.StatusInternalServerError, domain.Error(msgInternal))
}

func (s *Server) log(r *http.Request) *zap.Logger {
	return s.logger.With(zap.String("request_id", RequestIDFrom(r.Context())))
}
