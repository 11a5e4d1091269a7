package server

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"VolumeWatch/internal/report"
	"VolumeWatch/internal/store"
)

// authPageData feeds the login and signup templates.
type authPageData struct {
	Message string
	Error   string
}

// dashboardData feeds the dashboard template.
type dashboardData struct {
	Username string
	Symbols  []string
	Table    *report.TableView
	Message  string
	Warning  string
	Error    string
}

func flash(r *http.Request) (msg, warn, errMsg string) {
	q := r.URL.Query()
	return q.Get("msg"), q.Get("warn"), q.Get("err")
}

func redirectWith(w http.ResponseWriter, r *http.Request, path, key, value string) {
	http.Redirect(w, r, path+"?"+key+"="+url.QueryEscape(value), http.StatusSeeOther)
}

func (s *Server) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.currentUser(r); ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	msg, _, errMsg := flash(r)
	s.render(w, "login", authPageData{Message: msg, Error: errMsg})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")

	user, err := s.Store.Authenticate(username, password)
	if err != nil {
		if !errors.Is(err, store.ErrInvalidCredentials) {
			log.Printf("[ERROR] authenticate %q: %v", username, err)
		}
		// One generic message for unknown users and wrong passwords.
		redirectWith(w, r, "/login", "err", "Invalid username or password")
		return
	}

	sess := s.Sessions.Create(*user)
	s.setSessionCookie(w, sess)
	if s.Debug {
		log.Printf("[DEBUG] user %q logged in", user.Username)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleSignupPage(w http.ResponseWriter, r *http.Request) {
	msg, _, errMsg := flash(r)
	s.render(w, "signup", authPageData{Message: msg, Error: errMsg})
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")
	if username == "" || password == "" {
		redirectWith(w, r, "/signup", "err", "Username and password are required")
		return
	}

	if _, err := s.Store.CreateUser(username, password); err != nil {
		if errors.Is(err, store.ErrUserExists) {
			redirectWith(w, r, "/signup", "err", "Username already exists")
			return
		}
		log.Printf("[ERROR] create user %q: %v", username, err)
		redirectWith(w, r, "/signup", "err", "Registration failed")
		return
	}
	redirectWith(w, r, "/login", "msg", "Account created, please log in")
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookie); err == nil {
		s.Sessions.Destroy(cookie.Value)
	}
	s.clearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	user, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	symbols, err := s.Store.ListSymbols(user.ID)
	if err != nil {
		log.Printf("[ERROR] list symbols for %q: %v", user.Username, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	msg, warn, errMsg := flash(r)
	data := dashboardData{
		Username: user.Username,
		Symbols:  symbols,
		Message:  msg,
		Warning:  warn,
		Error:    errMsg,
	}

	if len(symbols) > 0 {
		rows := s.Collector.Snapshot(symbols)
		data.Table = report.Build(rows, time.Now())
	}

	s.render(w, "dashboard", data)
}

func (s *Server) handleAddSymbol(w http.ResponseWriter, r *http.Request) {
	user, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	symbol := strings.ToUpper(strings.TrimSpace(r.FormValue("symbol")))
	if symbol == "" {
		redirectWith(w, r, "/", "err", "Symbol is required")
		return
	}

	if err := s.Store.AddSymbol(user.ID, symbol); err != nil {
		if errors.Is(err, store.ErrSymbolExists) {
			redirectWith(w, r, "/", "warn", fmt.Sprintf("%s already exists", symbol))
			return
		}
		log.Printf("[ERROR] add symbol %s for %q: %v", symbol, user.Username, err)
		redirectWith(w, r, "/", "err", "Could not add symbol")
		return
	}
	redirectWith(w, r, "/", "msg", fmt.Sprintf("Added %s", symbol))
}

func (s *Server) handleRemoveSymbol(w http.ResponseWriter, r *http.Request) {
	user, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	symbol := strings.ToUpper(strings.TrimSpace(r.FormValue("symbol")))
	if symbol == "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if err := s.Store.RemoveSymbol(user.ID, symbol); err != nil {
		log.Printf("[ERROR] remove symbol %s for %q: %v", symbol, user.Username, err)
		redirectWith(w, r, "/", "err", "Could not remove symbol")
		return
	}
	redirectWith(w, r, "/", "msg", fmt.Sprintf("Removed %s", symbol))
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireUser(w, r); !ok {
		return
	}
	s.Cache.Invalidate()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
