package controllers

import (
	"encoding/json"
	"net/http"

	"portfolio-admin/app/apperr"
	"portfolio-admin/app/dto"
	"portfolio-admin/app/middleware"
	"portfolio-admin/app/services"
)

type ProfileController struct {
	Users *services.UserService
}

func NewProfileController(users *services.UserService) *ProfileController {
	return &ProfileController{Users: users}
}

// Update changes the caller's account fields. A password change additionally
// requires the correct current password; the service refuses to touch the
// stored hash otherwise.
func (c *ProfileController) Update(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())

	var req dto.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		dto.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	u, err := c.Users.UpdateProfile(claims.UserID, req.Name, req.Username, req.Email, req.CurrentPassword, req.NewPassword)
	if err != nil {
		if apperr.Status(err) == http.StatusNotFound {
			dto.Error(w, http.StatusNotFound, "User not found")
			return
		}
		fail(w, err)
		return
	}
	dto.JSON(w, http.StatusOK, dto.UserResponse{Success: true, User: u.Public()})
}
