package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/marketbay/storefront/internal/api/middleware"
	"github.com/marketbay/storefront/internal/core/domain"
	"github.com/marketbay/storefront/internal/core/ports"
)

// AuthHandler serves the sign-in, sign-up and sign-out views.
type AuthHandler struct {
	sessions ports.SessionService
	carts    ports.CartService
	catalog  ports.CatalogService
}

func NewAuthHandler(sessions ports.SessionService, carts ports.CartService, catalog ports.CatalogService) *AuthHandler {
	return &AuthHandler{sessions: sessions, carts: carts, catalog: catalog}
}

// Login handles POST /login. On success the session is persisted under the
// browser's sid and the identity is echoed back.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	session, err := h.sessions.Login(c.Request().Context(), middleware.SID(c), req.Username, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSessionResponse(session))
}

// Register handles POST /register. The account is created by the backend; no
// session is established until the user signs in.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	result, err := h.sessions.Register(c.Request().Context(), ports.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, registerResponse{ID: result.ID, Username: result.Username})
}

// Logout handles POST /logout. The stored session, the cart and the
// remembered browse position are all dropped; signing out twice succeeds.
func (h *AuthHandler) Logout(c echo.Context) error {
	sid := middleware.SID(c)
	if err := h.sessions.Logout(c.Request().Context(), sid); err != nil {
		return err
	}
	h.carts.Drop(sid)
	h.catalog.Forget(sid)
	return c.NoContent(http.StatusNoContent)
}

// LoginView handles GET /login, the view the gate redirects anonymous
// visitors to. A visitor who is already signed in is bounced straight to the
// product listing.
func (h *AuthHandler) LoginView(c echo.Context) error {
	if s := middleware.CurrentSession(c); s.IsAuthenticated() {
		return c.Redirect(http.StatusSeeOther, "/products")
	}
	return c.JSON(http.StatusOK, map[string]string{"view": "login"})
}

// Me handles GET /me, answering the resolved identity for the current sid.
func (h *AuthHandler) Me(c echo.Context) error {
	session := middleware.CurrentSession(c)
	return c.JSON(http.StatusOK, toSessionResponse(session))
}

func toSessionResponse(s *domain.Session) sessionResponse {
	resp := sessionResponse{Roles: []string{}}
	if s == nil {
		return resp
	}
	resp.Username = s.Username
	resp.Admin = s.IsAdmin()
	for _, r := range s.Roles {
		resp.Roles = append(resp.Roles, string(r))
	}
	return resp
}
