package controllers

import (
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"

	"portfolio-admin/app/middleware"
	"portfolio-admin/app/services"
	"portfolio-admin/global"
)

// PageController renders the handful of server-side pages the navigation
// gate protects. Rendering is deliberately bare: the pages exist as gate
// targets and form shells, not as the product UI.
type PageController struct {
	Content *services.ContentService
	tmpl    *template.Template
}

const pageTemplate = `{{define "page"}}<!doctype html>
<html>
<head><title>{{.Title}}</title></head>
<body>
<h1>{{.Title}}</h1>
{{if .Username}}<p>Signed in as {{.Username}}</p>{{end}}
{{range .Items}}<div>{{.}}</div>
{{end}}
</body>
</html>{{end}}`

type pageData struct {
	Title    string
	Username string
	Items    []string
}

func NewPageController(content *services.ContentService) *PageController {
	return &PageController{
		Content: content,
		tmpl:    template.Must(template.New("page").Parse(pageTemplate)),
	}
}

func (c *PageController) render(w http.ResponseWriter, r *http.Request, title string, items []string) {
	data := pageData{Title: title, Items: items}
	if claims := middleware.GetClaims(r.Context()); claims != nil {
		data.Username = claims.Username
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := c.tmpl.ExecuteTemplate(w, "page", data); err != nil {
		global.Logger.Error().Err(err).Msg("render page")
	}
}

func (c *PageController) Home(w http.ResponseWriter, r *http.Request) {
	items := []string{}
	if profile, err := c.Content.SiteProfile(); err == nil && profile.Name != "" {
		items = append(items, profile.Name+" — "+profile.Role)
	}
	if projects, err := c.Content.PublicProjects(); err == nil {
		for _, p := range projects {
			items = append(items, p.Title)
		}
	}
	c.render(w, r, "Portfolio", items)
}

func (c *PageController) Project(w http.ResponseWriter, r *http.Request) {
	p, err := c.Content.GetProject(chi.URLParam(r, "id"))
	if err != nil || !p.IsPublic {
		http.NotFound(w, r)
		return
	}
	c.render(w, r, p.Title, []string{p.Description})
}

func (c *PageController) Login(w http.ResponseWriter, r *http.Request) {
	c.render(w, r, "Login", nil)
}

func (c *PageController) Signup(w http.ResponseWriter, r *http.Request) {
	c.render(w, r, "Sign up", nil)
}

func (c *PageController) Profile(w http.ResponseWriter, r *http.Request) {
	c.render(w, r, "Your profile", nil)
}

func (c *PageController) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	c.render(w, r, "Admin", nil)
}

func (c *PageController) AdminProjects(w http.ResponseWriter, r *http.Request) {
	items := []string{}
	if projects, err := c.Content.ListProjects(); err == nil {
		for _, p := range projects {
			items = append(items, p.Title+" ("+p.Status+")")
		}
	}
	c.render(w, r, "Projects", items)
}

func (c *PageController) AdminClients(w http.ResponseWriter, r *http.Request) {
	items := []string{}
	if clients, err := c.Content.ListClients(); err == nil {
		for _, cl := range clients {
			items = append(items, cl.Name+" — "+cl.Company)
		}
	}
	c.render(w, r, "Clients", items)
}

func (c *PageController) AdminTasks(w http.ResponseWriter, r *http.Request) {
	items := []string{}
	if tasks, err := c.Content.ListTasks(); err == nil {
		for _, t := range tasks {
			items = append(items, t.Title+" ("+t.Status+")")
		}
	}
	c.render(w, r, "Tasks", items)
}

func (c *PageController) AdminCreateAdmin(w http.ResponseWriter, r *http.Request) {
	c.render(w, r, "Create admin", nil)
}
