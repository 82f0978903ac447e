package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"portfolio-admin/app/apperr"
	"portfolio-admin/app/dto"
	"portfolio-admin/app/models"
	"portfolio-admin/app/services"
)

type ProjectController struct {
	Content *services.ContentService
}

func NewProjectController(content *services.ContentService) *ProjectController {
	return &ProjectController{Content: content}
}

func (c *ProjectController) List(w http.ResponseWriter, r *http.Request) {
	projects, err := c.Content.ListProjects()
	if err != nil {
		fail(w, err)
		return
	}
	dto.JSON(w, http.StatusOK, projects)
}

func (c *ProjectController) Get(w http.ResponseWriter, r *http.Request) {
	p, err := c.Content.GetProject(chi.URLParam(r, "id"))
	if err != nil {
		if apperr.Status(err) == http.StatusNotFound {
			dto.Error(w, http.StatusNotFound, "Project not found")
			return
		}
		fail(w, err)
		return
	}
	dto.JSON(w, http.StatusOK, p)
}

func (c *ProjectController) Create(w http.ResponseWriter, r *http.Request) {
	var p models.Project
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		dto.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := c.Content.CreateProject(&p); err != nil {
		fail(w, err)
		return
	}
	dto.JSON(w, http.StatusCreated, p)
}

// Update merges the request body over the stored record: absent fields keep
// their current values.
func (c *ProjectController) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p, err := c.Content.GetProject(id)
	if err != nil {
		if apperr.Status(err) == http.StatusNotFound {
			dto.Error(w, http.StatusNotFound, "Project not found")
			return
		}
		fail(w, err)
		return
	}
	if err := json.NewDecoder(r.Body).Decode(p); err != nil {
		dto.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	p.ID = id
	if err := c.Content.UpdateProject(p); err != nil {
		fail(w, err)
		return
	}
	dto.JSON(w, http.StatusOK, p)
}

func (c *ProjectController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.Content.DeleteProject(chi.URLParam(r, "id")); err != nil {
		fail(w, err)
		return
	}
	dto.JSON(w, http.StatusOK, map[string]bool{"success": true})
}
