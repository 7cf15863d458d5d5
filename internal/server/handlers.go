package server

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"sportreg/internal/domain"
	"sportreg/internal/services/account"
)

const (
	maxFormBytes   = 1 << 20
	maxFormMemory  = 32 << 10
	msgRegistered  = "Registration successful"
	msgLoggedIn    = "Login successful"
	msgLoggedOut   = "You have been logged out!!"
	msgBadFormBody = "Could not read the submitted form"
)

// parseForm accepts both multipart and urlencoded bodies.
func parseForm(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	err := r.ParseMultipartForm(maxFormMemory)
	if errors.Is(err, http.ErrNotMultipart) {
		return nil
	}
	return err
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, "home", s.viewer(r))
}

func (s *Server) handleSportForm(w http.ResponseWriter, r *http.Request) {
	data := s.viewer(r)
	data.Sports = s.catalog.Sports
	data.Years = s.catalog.Years
	s.renderPage(w, r, "index", data)
}

func (s *Server) handleSignupPage(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, "register", s.viewer(r))
}

// handleSignup creates an account. A password mismatch is answered with 200,
// every other refusal with 400.
func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		s.log(r).Debug("parse signup form", zap.Error(err))
		s.notify(w, r, http.StatusBadRequest, domain.Error(msgBadFormBody))
		return
	}
	u, err := s.accounts.Register(r.Context(),
		r.PostForm.Get("username"),
		r.PostForm.Get("password"),
		r.PostForm.Get("confirm_password"),
	)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, account.ErrPasswordMismatch) {
			status = http.StatusOK
		}
		s.reject(w, r, status, err)
		return
	}
	s.log(r).Info("account created", zap.String("username", u.Username.String()))
	s.notify(w, r, http.StatusOK, domain.Success(msgRegistered))
}

func (s *Server) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, "login", s.viewer(r))
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		s.log(r).Debug("parse login form", zap.Error(err))
		s.notify(w, r, http.StatusBadRequest, domain.Error(msgBadFormBody))
		return
	}
	u, err := s.accounts.Authenticate(r.Context(), r.PostForm.Get("username"), r.PostForm.Get("password"))
	if err != nil {
		s.reject(w, r, http.StatusBadRequest, err)
		return
	}
	token, err := s.sessions.Issue(u)
	if err != nil {
		s.reject(w, r, http.StatusInternalServerError, err)
		return
	}
	s.setSession(w, token)
	s.notify(w, r, http.StatusOK, domain.Success(msgLoggedIn))
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.clearSession(w)
	s.notify(w, r, http.StatusOK, domain.Info(msgLoggedOut))
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, "dashboard", s.viewer(r))
}

// handleRegisterSport answers every outcome with 200; the notification
// status tells the page whether it worked.
func (s *Server) handleRegisterSport(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		s.log(r).Debug("parse registration form", zap.Error(err))
		s.notify(w, r, http.StatusBadRequest, domain.Error(msgBadFormBody))
		return
	}
	reg, err := s.enrollment.Enroll(r.Context(),
		r.PostForm.Get("name"),
		r.PostForm.Get("year"),
		r.PostForm.Get("sport"),
	)
	if err != nil {
		s.reject(w, r, http.StatusOK, err)
		return
	}
	s.log(r).Info("registrant added", zap.String("registrant", reg.String()))
	s.notify(w, r, http.StatusOK, domain.Success(msgRegistered))
}

func (s *Server) handleRegistrantsPage(w http.ResponseWriter, r *http.Request) {
	list, err := s.enrollment.Registrants(r.Context())
	if err != nil {
		s.log(r).Error("list registrants", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	data := s.viewer(r)
	data.Registrants = list
	s.renderPage(w, r, "registrants", data)
}

type registrantsReply struct {
	Registrants []domain.Registrant `json:"registrants"`
}

func (s *Server) handleRegistrantsAPI(w http.ResponseWriter, r *http.Request) {
	list, err := s.enrollment.Registrants(r.Context())
	if err != nil {
		s.reject(w, r, http.StatusInternalServerError, err)
		return
	}
	if list == nil {
		list = []domain.Registrant{}
	}
	if err := writeJSON(w, http.StatusOK, registrantsReply{Registrants: list}); err != nil {
		s.log(r).Debug("write response", zap.Error(err))
	}
}
