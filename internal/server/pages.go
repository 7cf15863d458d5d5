package server

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"go.uber.org/zap"

	"sportreg/internal/domain"
)

var pageNames = []string{"home", "index", "login", "register", "dashboard", "registrants"}

type pageSet struct {
	byName map[string]*template.Template
}

// pageData is the view model every page template receives.
type pageData struct {
	Username    string
	Sports      []string
	Years       []string
	Registrants []domain.Registrant
}

// parsePages pairs the shared layout with each page file.
func parsePages(fsys fs.FS) (*pageSet, error) {
	set := &pageSet{byName: make(map[string]*template.Template, len(pageNames))}
	for _, name := range pageNames {
		t, err := template.ParseFS(fsys, "layout.html", name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse page %s: %w", name, err)
		}
		set.byName[name] = t
	}
	return set, nil
}

func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, name string, data pageData) {
	t, ok := s.pages.byName[name]
	if !ok {
		s.log(r).Error("unknown page", zap.String("page", name))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		s.log(r).Error("render page", zap.String("page", name), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// viewer returns page data for the signed-in user, if any.
func (s *Server) viewer(r *http.Request) pageData {
	if u, ok := userFrom(r.Context()); ok {
		return pageData{Username: u.Username.String()}
	}
	u, ok, err := s.currentUser(r)
	if err != nil {
		s.log(r).Warn("resolve viewer", zap.Error(err))
		return pageData{}
	}
	if !ok {
		return pageData{}
	}
	return pageData{Username: u.Username.String()}
}
