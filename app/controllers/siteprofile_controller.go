package controllers

import (
	"encoding/json"
	"net/http"

	"portfolio-admin/app/dto"
	"portfolio-admin/app/services"
)

// SiteProfileController serves the site owner's public card, distinct from
// the per-account profile endpoint.
type SiteProfileController struct {
	Content *services.ContentService
}

func NewSiteProfileController(content *services.ContentService) *SiteProfileController {
	return &SiteProfileController{Content: content}
}

func (c *SiteProfileController) Get(w http.ResponseWriter, r *http.Request) {
	p, err := c.Content.SiteProfile()
	if err != nil {
		fail(w, err)
		return
	}
	dto.JSON(w, http.StatusOK, p)
}

func (c *SiteProfileController) Update(w http.ResponseWriter, r *http.Request) {
	p, err := c.Content.SiteProfile()
	if err != nil {
		fail(w, err)
		return
	}
	if err := json.NewDecoder(r.Body).Decode(p); err != nil {
		dto.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := c.Content.UpdateSiteProfile(p); err != nil {
		fail(w, err)
		return
	}
	dto.JSON(w, http.StatusOK, p)
}
