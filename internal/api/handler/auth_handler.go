package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/asadbek201001/Ilmhub-Coin-system/internal/core/domain"
	"github.com/asadbek201001/Ilmhub-Coin-system/internal/core/ports"
)

// AuthHandler handles login, signup, and identity lookup endpoints.
type AuthHandler struct {
	authService   ports.AuthService
	rosterService ports.RosterService
}

func NewAuthHandler(authService ports.AuthService, rosterService ports.RosterService) *AuthHandler {
	return &AuthHandler{authService: authService, rosterService: rosterService}
}

// Login authenticates an admin or teacher and returns a bearer token.
//
// @Summary      Login with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, authResponse{Token: token, User: user})
}

// LoginStudent authenticates a student by their 10-digit studentId.
//
// @Summary      Login with a student ID
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      studentLoginRequest  true  "Student ID"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /login-student [post]
func (h *AuthHandler) LoginStudent(c echo.Context) error {
	var req studentLoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.authService.LoginStudent(c.Request().Context(), req.StudentID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userResponse{User: user})
}

// Signup self-registers a new account.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Registration details"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.rosterService.Signup(c.Request().Context(), ports.SignupInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Role:     domain.Role(req.Role),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, userResponse{User: user})
}

// Me returns the caller's own user record.
//
// @Summary      Get the authenticated user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userResponse
// @Failure      401  {object}  errorResponse
// @Router       /user [get]
func (h *AuthHandler) Me(c echo.Context) error {
	user, err := ctxActor(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userResponse{User: user})
}
