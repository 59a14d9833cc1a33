package backend

import (
	"context"
	"net/http"

	"github.com/marketbay/storefront/internal/core/domain"
	"github.com/marketbay/storefront/internal/core/ports"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token    string   `json:"token"`
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

type registerResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// Login exchanges credentials for a bearer token. A 401 or 403 answer means
// the credentials were rejected, not that anything is broken.
func (c *Client) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	var out loginResponse
	err := c.do(ctx, "login", http.MethodPost, "/auth/login", nil, "", loginRequest{
		Username: username,
		Password: password,
	}, &out)
	if err != nil {
		if IsStatus(err, http.StatusUnauthorized) || IsStatus(err, http.StatusForbidden) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	return &ports.LoginResult{Token: out.Token, Username: out.Username, Roles: out.Roles}, nil
}

func (c *Client) Register(ctx context.Context, in ports.RegisterInput) (*ports.RegisterResult, error) {
	var out registerResponse
	err := c.do(ctx, "register", http.MethodPost, "/auth/register", nil, "", registerRequest{
		Username: in.Username,
		Password: in.Password,
		Email:    in.Email,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &ports.RegisterResult{ID: out.ID, Username: out.Username}, nil
}
