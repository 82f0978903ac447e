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

type TaskController struct {
	Content *services.ContentService
}

func NewTaskController(content *services.ContentService) *TaskController {
	return &TaskController{Content: content}
}

func (c *TaskController) List(w http.ResponseWriter, r *http.Request) {
	tasks, err := c.Content.ListTasks()
	if err != nil {
		fail(w, err)
		return
	}
	dto.JSON(w, http.StatusOK, tasks)
}

func (c *TaskController) Create(w http.ResponseWriter, r *http.Request) {
	var t models.Task
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		dto.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := c.Content.CreateTask(&t); err != nil {
		fail(w, err)
		return
	}
	dto.JSON(w, http.StatusCreated, t)
}

func (c *TaskController) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	t, err := c.Content.GetTask(id)
	if err != nil {
		if apperr.Status(err) == http.StatusNotFound {
			dto.Error(w, http.StatusNotFound, "Task not found")
			return
		}
		fail(w, err)
		return
	}
	if err := json.NewDecoder(r.Body).Decode(t); err != nil {
		dto.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	t.ID = id
	if err := c.Content.UpdateTask(t); err != nil {
		fail(w, err)
		return
	}
	dto.JSON(w, http.StatusOK, t)
}

func (c *TaskController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.Content.DeleteTask(chi.URLParam(r, "id")); err != nil {
		fail(w, err)
		return
	}
	dto.JSON(w, http.StatusOK, map[string]bool{"success": true})
}
