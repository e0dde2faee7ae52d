// Package server publishes the commodity analysis over HTTP.
//
// The HTML pages are the markdown reports converted by goldmark, the /api routes serve the
// same sections as JSON. The price table is reloaded on every request so that a refreshed
// data file is picked up without a restart.
package server

import (
	"bytes"
	"html/template"
	"log"
	"net/http"

	"github.com/etnz/pricetracker"
	"github.com/etnz/pricetracker/renderer"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Loader returns the price table to analyse.
type Loader func() (pricetracker.Table, error)

// Server serves the dashboard and its views.
type Server struct {
	load   Loader
	source string
	opts   renderer.Options
	md     goldmark.Markdown
}

// New returns a server analysing the tables returned by load.
//
// source names the data for display only.
func New(load Loader, source string, opts renderer.Options) *Server {
	return &Server{
		load:   load,
		source: source,
		opts:   opts,
		md:     goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

// Routes returns the HTTP handler of the server.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/", s.dashboardPage)
	r.Get("/{view}", s.viewPage)

	r.Route("/api", func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))
		r.Get("/dashboard", s.dashboardJSON)
		r.Get("/{view}", s.viewJSON)
	})
	return r
}

// dashboard loads the table and computes the dashboard, or writes the error.
func (s *Server) dashboard(w http.ResponseWriter, r *http.Request) (*pricetracker.Dashboard, bool) {
	t, err := s.load()
	if err != nil {
		log.Printf("cannot load prices: %v", err)
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, map[string]string{"error": err.Error()})
		return nil, false
	}
	return pricetracker.NewDashboard(t, s.source), true
}

// view parses the view URL parameter, or writes the error.
func view(w http.ResponseWriter, r *http.Request) (pricetracker.View, bool) {
	v, err := pricetracker.ParseView(chi.URLParam(r, "view"))
	if err != nil {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, map[string]string{"error": err.Error()})
		return 0, false
	}
	return v, true
}

func (s *Server) dashboardJSON(w http.ResponseWriter, r *http.Request) {
	d, ok := s.dashboard(w, r)
	if !ok {
		return
	}
	render.JSON(w, r, d)
}

func (s *Server) viewJSON(w http.ResponseWriter, r *http.Request) {
	v, ok := view(w, r)
	if !ok {
		return
	}
	d, ok := s.dashboard(w, r)
	if !ok {
		return
	}
	if sec, ok := d.Inflation(v); ok {
		render.JSON(w, r, sec)
		return
	}
	render.JSON(w, r, d.Volatility)
}

func (s *Server) dashboardPage(w http.ResponseWriter, r *http.Request) {
	d, ok := s.dashboard(w, r)
	if !ok {
		return
	}
	s.page(w, "Commodity Analysis Dashboard", renderer.DashboardMarkdown(d, s.opts))
}

func (s *Server) viewPage(w http.ResponseWriter, r *http.Request) {
	v, ok := view(w, r)
	if !ok {
		return
	}
	d, ok := s.dashboard(w, r)
	if !ok {
		return
	}
	s.page(w, v.Title(), renderer.ViewMarkdown(d, v, s.opts))
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; max-width: 60em; margin: auto; }
table { border-collapse: collapse; }
th, td { border: 1px solid #ccc; padding: 0.2em 0.6em; }
nav a { margin-right: 1em; }
</style>
</head>
<body>
<nav><a href="/">Dashboard</a>{{range .Views}}<a href="/{{.}}">{{.Title}}</a>{{end}}</nav>
{{.Body}}
</body>
</html>
`))

// page converts the markdown report into an HTML page.
func (s *Server) page(w http.ResponseWriter, title, report string) {
	var body bytes.Buffer
	if err := s.md.Convert([]byte(report), &body); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	err := pageTemplate.Execute(&buf, struct {
		Title string
		Views []pricetracker.View
		Body  template.HTML
	}{title, pricetracker.Views, template.HTML(body.String())})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Printf("cannot write page: %v", err)
	}
}
