package handlers

import (
	"net/http"

	"github.com/crucial707/folio-api/internal/service"
	"go.uber.org/zap"
)

// ==========================
// Auth Handler
// ==========================
type AuthHandler struct {
	Auth *service.AuthService
	Log  *zap.Logger
}

type loginRequest struct {
	Username string `json:"username" validate:"required,max=255"`
	Password string `json:"password" validate:"required,max=1024"`
}

// ==========================
// Login
// ==========================

// Login exchanges a username and password for a session token. Unknown users
// and wrong passwords get the same 401.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input loginRequest
	if !decodeAndValidate(w, r, &input) {
		return
	}

	signed, err := h.Auth.Login(r.Context(), input.Username, input.Password)
	if err != nil {
		writeError(w, r, h.Log, err)
		return
	}

	h.Log.Info("login succeeded", zap.String("username", input.Username))
	writeJSON(w, http.StatusOK, map[string]string{"token": signed})
}
