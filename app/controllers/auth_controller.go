package controllers

import (
	"net/http"

	"github.com/bargaoui/rideaux/app/services"
	"github.com/bargaoui/rideaux/config"
	"github.com/bargaoui/rideaux/pkg/auth"
	"github.com/bargaoui/rideaux/pkg/ctx"
	"github.com/bargaoui/rideaux/pkg/middleware"
)

// AuthController handles registration, login and the password-reset flow.
type AuthController struct {
	service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{service: service}
}

type registerInput struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
}

// Register creates an account and starts a session.
func (a *AuthController) Register(c *ctx.Context) {
	var in registerInput
	if !c.BindJSON(&in) {
		return
	}

	user, token, err := a.service.Register(c.Context(), in.FirstName, in.LastName, in.Email, in.Password)
	if err != nil {
		fail(c, err)
		return
	}

	setSessionCookie(c, token)
	c.Created(user)
}

type loginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login verifies credentials and starts a session.
func (a *AuthController) Login(c *ctx.Context) {
	var in loginInput
	if !c.BindJSON(&in) {
		return
	}

	user, token, err := a.service.Login(c.Context(), in.Email, in.Password)
	if err != nil {
		fail(c, err)
		return
	}

	setSessionCookie(c, token)
	c.Success(user)
}

// Logout expires the session cookie. The token itself is stateless; there
// is no server-side revocation list.
func (a *AuthController) Logout(c *ctx.Context) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Secure:   config.AppEnv() == "production",
	})
	c.SuccessMessage("Logged out successfully")
}

type forgotPasswordInput struct {
	Email string `json:"email" validate:"required,email"`
}

// ForgotPassword issues a reset token and emails the reset link.
func (a *AuthController) ForgotPassword(c *ctx.Context) {
	var in forgotPasswordInput
	if !c.BindJSON(&in) {
		return
	}

	if err := a.service.RequestPasswordReset(c.Context(), in.Email); err != nil {
		fail(c, err)
		return
	}
	c.SuccessMessage("Password reset email sent")
}

type resetPasswordInput struct {
	Password string `json:"password" validate:"required,min=6"`
}

// ResetPassword consumes the emailed token and sets a new password.
func (a *AuthController) ResetPassword(c *ctx.Context) {
	var in resetPasswordInput
	if !c.BindJSON(&in) {
		return
	}

	if err := a.service.ResetPassword(c.Context(), c.Param("token"), in.Password); err != nil {
		fail(c, err)
		return
	}
	c.SuccessMessage("Password has been reset")
}

func setSessionCookie(c *ctx.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(auth.TokenTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Secure:   config.AppEnv() == "production",
	})
}
