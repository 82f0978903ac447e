package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"portfolio-admin/app/controllers"
	"portfolio-admin/app/middleware"
)

type Deps struct {
	Auth         *middleware.Auth
	LoginLimiter *middleware.RateLimiter

	AuthCtrl    *controllers.AuthController
	AdminCtrl   *controllers.AdminController
	ProfileCtrl *controllers.ProfileController
	ProjectCtrl *controllers.ProjectController
	ClientCtrl  *controllers.ClientController
	TaskCtrl    *controllers.TaskController
	SiteCtrl    *controllers.SiteProfileController
	PageCtrl    *controllers.PageController
}

// New assembles the route tree. JSON endpoints answer with status codes
// through RequireAuth/RequireAdmin; page routes go through the navigation
// gate, which redirects instead.
func New(d Deps) http.Handler {
	r := chi.NewRouter()

	// auth API
	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", d.AuthCtrl.Signup)
		r.With(d.LoginLimiter.Limit).Post("/login", d.AuthCtrl.Login)
		r.Post("/logout", d.AuthCtrl.Logout)
		r.With(d.Auth.RequireAuth).Get("/me", d.AuthCtrl.Me)
	})

	// admin API, enforced independently of the page gate
	r.With(d.Auth.RequireAdmin).Post("/admin/create-admin", d.AdminCtrl.CreateAdmin)

	// account profile
	r.With(d.Auth.RequireAuth).Put("/profile", d.ProfileCtrl.Update)

	// content API
	r.Route("/api", func(r chi.Router) {
		r.Get("/projects", d.ProjectCtrl.List)
		r.Get("/projects/{id}", d.ProjectCtrl.Get)
		r.Get("/profile", d.SiteCtrl.Get)

		r.Group(func(r chi.Router) {
			r.Use(d.Auth.RequireAdmin)
			r.Post("/projects", d.ProjectCtrl.Create)
			r.Put("/projects/{id}", d.ProjectCtrl.Update)
			r.Delete("/projects/{id}", d.ProjectCtrl.Delete)

			r.Get("/clients", d.ClientCtrl.List)
			r.Post("/clients", d.ClientCtrl.Create)
			r.Put("/clients/{id}", d.ClientCtrl.Update)
			r.Delete("/clients/{id}", d.ClientCtrl.Delete)

			r.Get("/tasks", d.TaskCtrl.List)
			r.Post("/tasks", d.TaskCtrl.Create)
			r.Put("/tasks/{id}", d.TaskCtrl.Update)
			r.Delete("/tasks/{id}", d.TaskCtrl.Delete)

			r.Put("/profile", d.SiteCtrl.Update)
		})
	})

	// pages
	r.Group(func(r chi.Router) {
		r.Use(d.Auth.Gate)
		r.Get("/", d.PageCtrl.Home)
		r.Get("/projects/{id}", d.PageCtrl.Project)
		r.Get("/login", d.PageCtrl.Login)
		r.Get("/signup", d.PageCtrl.Signup)
		r.Get("/profile", d.PageCtrl.Profile)
		r.Get("/admin", d.PageCtrl.AdminDashboard)
		r.Get("/admin/projects", d.PageCtrl.AdminProjects)
		r.Get("/admin/clients", d.PageCtrl.AdminClients)
		r.Get("/admin/tasks", d.PageCtrl.AdminTasks)
		r.Get("/admin/create-admin", d.PageCtrl.AdminCreateAdmin)
	})

	return r
}
