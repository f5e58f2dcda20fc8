package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) listNotifications(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, http.StatusOK, s.toasts.List())
}

func (s *Server) pauseNotification(w http.ResponseWriter, r *http.Request) {
	s.updateNotification(w, r, s.toasts.Pause)
}

func (s *Server) resumeNotification(w http.ResponseWriter, r *http.Request) {
	s.updateNotification(w, r, s.toasts.Resume)
}

func (s *Server) closeNotification(w http.ResponseWriter, r *http.Request) {
	s.updateNotification(w, r, s.toasts.Close)
}

// updateNotification applies fn to the toast in the url and renders the
// toast afterwards. Transitions that don't apply are no-ops.
func (s *Server) updateNotification(w http.ResponseWriter, r *http.Request, fn func(id string) bool) {
	id := chi.URLParam(r, "id")
	if _, ok := s.toasts.Get(id); !ok {
		renderError(w, http.StatusNotFound, "notification not found")
		return
	}

	fn(id)

	toast, ok := s.toasts.Get(id)
	if !ok {
		renderError(w, http.StatusNotFound, "notification not found")
		return
	}

	renderJSON(w, http.StatusOK, toast)
}
