package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"portfolio-admin/app/apperr"
	"portfolio-admin/app/denylist"
	"portfolio-admin/app/dto"
	"portfolio-admin/app/middleware"
	"portfolio-admin/app/services"
	"portfolio-admin/app/session"
	"portfolio-admin/app/token"
	"portfolio-admin/global"
)

type AuthController struct {
	Users    *services.UserService
	Signer   *token.Signer
	Cookies  *session.Transport
	Denylist denylist.Denylist
}

func NewAuthController(users *services.UserService, signer *token.Signer, cookies *session.Transport, dl denylist.Denylist) *AuthController {
	return &AuthController{Users: users, Signer: signer, Cookies: cookies, Denylist: dl}
}

func (c *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	var req dto.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		dto.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" || req.Username == "" || req.Email == "" || req.Password == "" {
		dto.Error(w, http.StatusBadRequest, "All fields are required")
		return
	}
	u, err := c.Users.Signup(req.Name, req.Username, req.Email, req.Password)
	if err != nil {
		fail(w, err)
		return
	}
	pub := u.Public()
	pub.IsAdmin = false
	dto.JSON(w, http.StatusOK, dto.UserResponse{Success: true, User: pub})
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		dto.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		dto.Error(w, http.StatusBadRequest, "Email and password are required")
		return
	}
	u, err := c.Users.Authenticate(req.Email, req.Password)
	if err != nil {
		fail(w, err)
		return
	}
	tok, err := c.Signer.Sign(u)
	if err != nil {
		global.Logger.Error().Err(err).Msg("sign token")
		dto.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.Cookies.Set(w, tok)
	dto.JSON(w, http.StatusOK, dto.UserResponse{Success: true, User: u.Public()})
}

// Logout clears the cookie and, when a real denylist is configured, kills the
// presented token for the rest of its lifetime. Safe to call with no session.
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	if raw := c.Cookies.Read(r); raw != "" {
		if claims, err := c.Signer.Parse(raw); err == nil && claims.ExpiresAt != nil {
			ttl := time.Until(claims.ExpiresAt.Time)
			if err := c.Denylist.Revoke(r.Context(), claims.ID, ttl); err != nil {
				global.Logger.Warn().Err(err).Msg("revoke token")
			}
		}
	}
	c.Cookies.Clear(w)
	dto.JSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Me reports the caller's public profile. The auth middleware has already
// verified the session; a missing record means the token outlived its user.
func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	u, err := c.Users.GetByID(claims.UserID)
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
