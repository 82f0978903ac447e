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

type ClientController struct {
	Content *services.ContentService
}

func NewClientController(content *services.ContentService) *ClientController {
	return &ClientController{Content: content}
}

func (c *ClientController) List(w http.ResponseWriter, r *http.Request) {
	clients, err := c.Content.ListClients()
	if err != nil {
		fail(w, err)
		return
	}
	dto.JSON(w, http.StatusOK, clients)
}

func (c *ClientController) Create(w http.ResponseWriter, r *http.Request) {
	var cl models.Client
	if err := json.NewDecoder(r.Body).Decode(&cl); err != nil {
		dto.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := c.Content.CreateClient(&cl); err != nil {
		fail(w, err)
		return
	}
	dto.JSON(w, http.StatusCreated, cl)
}

func (c *ClientController) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	cl, err := c.Content.GetClient(id)
	if err != nil {
		if apperr.Status(err) == http.StatusNotFound {
			dto.Error(w, http.StatusNotFound, "Client not found")
			return
		}
		fail(w, err)
		return
	}
	if err := json.NewDecoder(r.Body).Decode(cl); err != nil {
		dto.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	cl.ID = id
	if err := c.Content.UpdateClient(cl); err != nil {
		fail(w, err)
		return
	}
	dto.JSON(w, http.StatusOK, cl)
}

func (c *ClientController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.Content.DeleteClient(chi.URLParam(r, "id")); err != nil {
		fail(w, err)
		return
	}
	dto.JSON(w, http.StatusOK, map[string]bool{"success": true})
}
