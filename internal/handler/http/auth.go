package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/ingenious-hr/hr-portal-go/internal/domain/auth"
	"github.com/ingenious-hr/hr-portal-go/internal/handler/http/response"
	"github.com/ingenious-hr/hr-portal-go/internal/pkg/jwt"
	authsvc "github.com/ingenious-hr/hr-portal-go/internal/service/auth"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService *authsvc.Service
	jwtService  jwt.Service
}

func NewAuthHandler(authService *authsvc.Service, jwtService jwt.Service) AuthHandler {
	return &AuthHandlerImpl{authService: authService, jwtService: jwtService}
}

// Login implements AuthHandler.
func (h *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.authService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, h.jwtService.RefreshTokenCookie(result.RefreshToken, result.RefreshExpiresAt))

	response.Success(w, auth.LoginResponse{
		Employee:        result.Employee.ToResponse(),
		AccessToken:     result.AccessToken,
		AccessExpiresAt: result.AccessExpiresAt,
	})
}

// Logout implements AuthHandler.
func (h *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	token := jwtauth.TokenFromHeader(r)
	if err := h.authService.Logout(r.Context(), token); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Logged out successfully", nil)
}
