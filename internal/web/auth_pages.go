package web

import (
	"net/http"

	"go.uber.org/zap"

	"taskdeck/internal/logging"
)

func (s *Server) loginPage(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, pageLogin, pageData{Title: "Login", Page: LoginForm{}})
}

// login submits the credentials once. On success the session is stored and
// the browser goes home; on failure the page stays with one alert and the
// username as typed. The password is never echoed back.
func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	form, err := parseLoginForm(r)
	if err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	log := logging.WithRequest(r.Context(), s.logger)
	if _, err := s.svc.Login(r.Context(), form.Username, form.Password); err != nil {
		log.Info("login failed", zap.String("username", form.Username), zap.Error(err))
		s.render(w, r, http.StatusOK, pageLogin, pageData{
			Title: "Login",
			Alert: alertText("Login failed", err),
			Page:  LoginForm{Username: form.Username},
		})
		return
	}
	seeOther(w, r, "/")
}

func (s *Server) signupPage(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, pageSignup, pageData{Title: "Signup", Page: SignupForm{}})
}

// signup registers an account and sends the browser to the login page.
func (s *Server) signup(w http.ResponseWriter, r *http.Request) {
	form, err := parseSignupForm(r)
	if err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	if err := s.svc.Signup(r.Context(), form.Username, form.Password); err != nil {
		logging.WithRequest(r.Context(), s.logger).Info("signup failed",
			zap.String("username", form.Username), zap.Error(err))
		s.render(w, r, http.StatusOK, pageSignup, pageData{
			Title: "Signup",
			Alert: alertText("Signup failed", err),
			Page:  SignupForm{Username: form.Username},
		})
		return
	}
	seeOther(w, r, "/login")
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Logout(r.Context()); err != nil {
		logging.WithRequest(r.Context(), s.logger).Warn("failed to clear session", zap.Error(err))
	}
	seeOther(w, r, "/login")
}
