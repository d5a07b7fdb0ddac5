package apiclient

import (
	"context"
	"net/http"

	"styledecor/internal/domain"
)

type userDTO struct {
	ID        string  `json:"_id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	PhotoURL  string  `json:"photoURL"`
	Role      string  `json:"role"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"createdAt"`
	Decorator *decDTO `json:"decoratorInfo"`
}

type decDTO struct {
	Specialization string  `json:"specialization"`
	Rating         float64 `json:"rating"`
	ProjectsDone   int     `json:"projectsDone"`
}

func (d userDTO) toDomain() (domain.User, error) {
	role, err := domain.ParseRole(d.Role)
	if err != nil {
		return domain.User{}, err
	}
	u := domain.User{
		ID:        d.ID,
		Name:      d.Name,
		Email:     d.Email,
		PhotoURL:  d.PhotoURL,
		Role:      role,
		Status:    domain.UserStatus(d.Status),
		CreatedAt: parseTime(d.CreatedAt),
	}
	if u.Status == "" {
		u.Status = domain.UserStatusActive
	}
	if d.Decorator != nil {
		u.DecoratorInfo = &domain.DecoratorInfo{
			Specialization: d.Decorator.Specialization,
			Rating:         d.Decorator.Rating,
			ProjectsDone:   d.Decorator.ProjectsDone,
		}
	}
	return u, nil
}

type authResponse struct {
	Token string  `json:"token"`
	User  userDTO `json:"user"`
}

// Credentials is the login payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the sign-up payload.
type Registration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	PhotoURL string `json:"photoURL,omitempty"`
}

// Login exchanges credentials for a bearer token and the resolved user.
func (c *Client) Login(ctx context.Context, creds Credentials) (string, domain.User, error) {
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", "", creds, &resp); err != nil {
		return "", domain.User{}, err
	}
	user, err := resp.User.toDomain()
	if err != nil {
		return "", domain.User{}, err
	}
	return resp.Token, user, nil
}

// Register creates an account and returns the fresh token and user.
func (c *Client) Register(ctx context.Context, reg Registration) (string, domain.User, error) {
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", "", reg, &resp); err != nil {
		return "", domain.User{}, err
	}
	user, err := resp.User.toDomain()
	if err != nil {
		return "", domain.User{}, err
	}
	return resp.Token, user, nil
}

// Profile resolves the identity behind a bearer token. Any failure means the
// token is no longer usable.
func (c *Client) Profile(ctx context.Context, token string) (domain.User, error) {
	var resp struct {
		User userDTO `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/auth/profile", token, nil, &resp); err != nil {
		return domain.User{}, err
	}
	return resp.User.toDomain()
}
