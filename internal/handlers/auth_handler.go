package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/pet-shop/internal/domain/identity"
	"github.com/BruksfildServices01/pet-shop/internal/httperr"
	"github.com/BruksfildServices01/pet-shop/internal/httpresp"
	"github.com/BruksfildServices01/pet-shop/internal/infra/session"
	"github.com/BruksfildServices01/pet-shop/internal/middleware"
)

// Accounts is the sign-up / sign-in side of the identity provider.
type Accounts interface {
	SignUp(ctx context.Context, email, password, fullName string) (*identity.SessionUser, error)
	SignIn(ctx context.Context, email, password string) (string, *identity.SessionUser, error)
}

type AuthHandler struct {
	accounts     Accounts
	cookieAge    int
	secureCookie bool
	log          zerolog.Logger
}

func NewAuthHandler(accounts Accounts, cookieAgeSeconds int, secureCookie bool, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		accounts:     accounts,
		cookieAge:    cookieAgeSeconds,
		secureCookie: secureCookie,
		log:          log,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name" binding:"max=150"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type accountView struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName,omitempty"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	u, err := h.accounts.SignUp(c.Request.Context(), req.Email, req.Password, req.FullName)
	if err != nil {
		if errors.Is(err, session.ErrEmailTaken) {
			httperr.Conflict(c, "EMAIL_TAKEN", "An account with this email already exists.")
			return
		}
		writeError(c, h.log, err, "REGISTRATION_FAILED")
		return
	}

	httpresp.Created(c, accountView{ID: u.ID, Email: u.Email, FullName: u.Metadata.FullName})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	token, u, err := h.accounts.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, session.ErrInvalidCredentials) {
			httperr.Unauthorized(c, "INVALID_CREDENTIALS", "Invalid email or password.")
			return
		}
		writeError(c, h.log, err, "LOGIN_FAILED")
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, token, h.cookieAge, "/", "", h.secureCookie, true)

	httpresp.OK(c, gin.H{
		"token": token,
		"user":  accountView{ID: u.ID, Email: u.Email, FullName: u.Metadata.FullName},
	})
}
