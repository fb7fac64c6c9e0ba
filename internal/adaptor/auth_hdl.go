package adaptor

import (
	"net/http"
	"time"

	"customer-crm/internal/dto/request"
	"customer-crm/internal/usecase"
	"customer-crm/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	session utils.SessionConfig
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, session utils.SessionConfig, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		session: session,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// RegisterPage handles GET /register
func (h *AuthHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "Register", request.RegisterRequest{})
}

// Register handles POST /register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest

	if err := decodeBody(w, r, &req); err != nil {
		invalidBody(w, err)
		return
	}

	user, err := h.service.Register(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "register", req.Echo())
		return
	}

	h.log.Info("Account was created", zap.String("username", user.Username))
	utils.ResponseRedirect(w, r, "/login")
}

// LoginPage handles GET /login
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "Login", request.LoginRequest{})
}

// Login handles POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest

	if err := decodeBody(w, r, &req); err != nil {
		invalidBody(w, err)
		return
	}

	auth, err := h.service.Login(r.Context(), &req, usecase.SessionMeta{
		UserAgent: r.UserAgent(),
		IPAddress: utils.ClientIP(r),
	})
	if err != nil {
		handleServiceError(w, h.log, err, "login", req.Echo())
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.session.CookieName,
		Value:    auth.Token,
		Path:     "/",
		Expires:  auth.ExpiresAt,
		HttpOnly: true,
		Secure:   h.session.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	utils.ResponseRedirect(w, r, "/")
}

// Logout handles GET /logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if token, ok := utils.GetTokenFromContext(r.Context()); ok {
		if err := h.service.Logout(r.Context(), token); err != nil {
			h.log.Error("Failed to logout", zap.Error(err))
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.session.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.session.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	utils.ResponseRedirect(w, r, "/login")
}
