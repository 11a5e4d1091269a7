package server

import (
	"log"
	"net/http"

	"VolumeWatch/internal/collector"
	"VolumeWatch/internal/model"
	"VolumeWatch/internal/session"
	"VolumeWatch/internal/store"
)

const sessionCookie = "vw_session"

// Server serves the watchlist dashboard.
type Server struct {
	Store     store.Store
	Sessions  *session.Manager
	Collector *collector.Collector
	Cache     *collector.CachedFetcher
	Debug     bool
}

// NewServer creates a new Server.
func NewServer(st store.Store, sessions *session.Manager, col *collector.Collector, cache *collector.CachedFetcher, debug bool) *Server {
	return &Server{
		Store:     st,
		Sessions:  sessions,
		Collector: col,
		Cache:     cache,
		Debug:     debug,
	}
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /login", s.handleLoginPage)
	mux.HandleFunc("POST /login", s.handleLogin)
	mux.HandleFunc("GET /signup", s.handleSignupPage)
	mux.HandleFunc("POST /signup", s.handleSignup)
	mux.HandleFunc("POST /logout", s.handleLogout)
	mux.HandleFunc("GET /{$}", s.handleDashboard)
	mux.HandleFunc("POST /symbols/add", s.handleAddSymbol)
	mux.HandleFunc("POST /symbols/remove", s.handleRemoveSymbol)
	mux.HandleFunc("POST /refresh", s.handleRefresh)
	return mux
}

// currentUser resolves the session cookie to a user, if any.
func (s *Server) currentUser(r *http.Request) (model.User, bool) {
	cookie, err := r.Cookie(sessionCookie)
	if err != nil {
		return model.User{}, false
	}
	return s.Sessions.Lookup(cookie.Value)
}

// requireUser redirects to the login page when the request carries no
// valid session.
func (s *Server) requireUser(w http.ResponseWriter, r *http.Request) (model.User, bool) {
	user, ok := s.currentUser(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return model.User{}, false
	}
	return user, true
}

func (s *Server) setSessionCookie(w http.ResponseWriter, sess session.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    sess.Token,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Server) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

func (s *Server) render(w http.ResponseWriter, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("[ERROR] render %s: %v", name, err)
	}
}
