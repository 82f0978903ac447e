package controllers

import (
	"encoding/json"
	"net/http"

	"portfolio-admin/app/dto"
	"portfolio-admin/app/services"
)

type AdminController struct {
	Users *services.UserService
}

func NewAdminController(users *services.UserService) *AdminController {
	return &AdminController{Users: users}
}

// CreateAdmin provisions a new admin account. The RequireAdmin interceptor
// has already rejected non-admin callers; this is the API-side enforcement
// point, independent of the page gate.
func (c *AdminController) CreateAdmin(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		dto.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" || req.Username == "" || req.Email == "" || req.Password == "" {
		dto.Error(w, http.StatusBadRequest, "All fields are required")
		return
	}
	u, err := c.Users.CreateAdmin(req.Name, req.Username, req.Email, req.Password)
	if err != nil {
		fail(w, err)
		return
	}
	dto.JSON(w, http.StatusOK, dto.UserResponse{Success: true, User: u.Public()})
}
