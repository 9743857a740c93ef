package web

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"go.uber.org/zap"

	"taskdeck/internal/logging"
	"taskdeck/internal/service"
)

//go:embed templates static
var assets embed.FS

// Page names, one template set each.
const (
	pageHome   = "home"
	pageLogin  = "login"
	pageSignup = "signup"
)

// pageData is what every page template receives.
type pageData struct {
	Title  string
	User   userView
	Alert  string // at most one blocking alert per render
	Notice string
	Page   any
}

type userView struct {
	LoggedIn bool
	Name     string
}

// homePage is the view model of the home page.
type homePage struct {
	Form  TaskForm
	Tasks []service.Task
}

// parsePages builds one template set per page: the layout, the shared
// partials and the page's own content block.
func parsePages() (map[string]*template.Template, error) {
	pages := make(map[string]*template.Template)
	for _, name := range []string{pageHome, pageLogin, pageSignup} {
		t, err := template.New(name).ParseFS(assets,
			"templates/layout.html",
			"templates/partials/*.html",
			"templates/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s templates: %w", name, err)
		}
		pages[name] = t
	}
	return pages, nil
}

func staticFiles() http.Handler {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}

// render executes a page into a buffer first so a template error becomes a
// clean 500 instead of a half-written page.
func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, page string, data pageData) {
	data.User = s.currentUser(r)

	var buf bytes.Buffer
	if err := s.pages[page].ExecuteTemplate(&buf, "layout", data); err != nil {
		logging.WithRequest(r.Context(), s.logger).Error("failed to render page",
			zap.String("page", page), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

func (s *Server) currentUser(r *http.Request) userView {
	sess, err := s.svc.CurrentSession(r.Context())
	if err != nil {
		return userView{}
	}
	return userView{LoggedIn: true, Name: sess.Username}
}

// alertText turns a failed call into the single line shown to the user.
func alertText(prefix string, err error) string {
	var se *service.Error
	if !errors.As(err, &se) {
		return prefix
	}
	switch {
	case se.Message != "":
		return prefix + ": " + se.Message
	case se.Kind == service.KindNetwork:
		return prefix + ": the task server is unreachable"
	default:
		return prefix
	}
}
