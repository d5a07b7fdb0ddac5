package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"styledecor/internal/domain"
)

type serviceDTO struct {
	ID          string `json:"_id"`
	Name        string `json:"service_name"`
	Category    string `json:"service_category"`
	Cost        int    `json:"cost"`
	Unit        string `json:"unit"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

func (d serviceDTO) toDomain() domain.Service {
	return domain.Service{
		ID:          d.ID,
		Name:        d.Name,
		Category:    d.Category,
		Cost:        d.Cost,
		Unit:        d.Unit,
		Description: d.Description,
		Image:       d.Image,
	}
}

// ListServices fetches a catalog page with the given filters.
func (c *Client) ListServices(ctx context.Context, q domain.ServiceQuery) ([]domain.Service, domain.Pagination, error) {
	vals := url.Values{}
	if q.Search != "" {
		vals.Set("search", q.Search)
	}
	if q.Category != "" {
		vals.Set("category", q.Category)
	}
	if q.Sort != "" {
		vals.Set("sort", q.Sort)
	}
	if q.Page > 0 {
		vals.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		vals.Set("limit", strconv.Itoa(q.Limit))
	}
	path := "/api/services"
	if len(vals) > 0 {
		path += "?" + vals.Encode()
	}

	var resp struct {
		Data       []serviceDTO  `json:"data"`
		Pagination paginationDTO `json:"pagination"`
	}
	if err := c.do(ctx, http.MethodGet, path, "", nil, &resp); err != nil {
		return nil, domain.Pagination{}, err
	}
	services := make([]domain.Service, 0, len(resp.Data))
	for _, d := range resp.Data {
		services = append(services, d.toDomain())
	}
	return services, resp.Pagination.toDomain(), nil
}

// GetService fetches one service by id.
func (c *Client) GetService(ctx context.Context, id string) (domain.Service, error) {
	var resp struct {
		Data serviceDTO `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/services/"+url.PathEscape(id), "", nil, &resp); err != nil {
		return domain.Service{}, err
	}
	return resp.Data.toDomain(), nil
}

// ServiceCategories lists the distinct catalog categories.
func (c *Client) ServiceCategories(ctx context.Context) ([]string, error) {
	var resp struct {
		Data []string `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/services/meta/categories", "", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

type decoratorDTO struct {
	ID             string  `json:"_id"`
	Name           string  `json:"name"`
	PhotoURL       string  `json:"photoURL"`
	Specialization string  `json:"specialization"`
	Rating         float64 `json:"rating"`
	ProjectsDone   int     `json:"projectsDone"`
}

func (d decoratorDTO) toDomain() domain.Decorator {
	return domain.Decorator{
		ID:             d.ID,
		Name:           d.Name,
		PhotoURL:       d.PhotoURL,
		Specialization: d.Specialization,
		Rating:         d.Rating,
		ProjectsDone:   d.ProjectsDone,
	}
}

// ListDecorators lists all public decorator profiles.
func (c *Client) ListDecorators(ctx context.Context) ([]domain.Decorator, error) {
	return c.decorators(ctx, "/api/decorators")
}

// TopDecorators lists the highest rated decorators for the home page.
func (c *Client) TopDecorators(ctx context.Context, limit int) ([]domain.Decorator, error) {
	return c.decorators(ctx, fmt.Sprintf("/api/decorators/top?limit=%d", limit))
}

func (c *Client) decorators(ctx context.Context, path string) ([]domain.Decorator, error) {
	var resp struct {
		Data []decoratorDTO `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, path, "", nil, &resp); err != nil {
		return nil, err
	}
	out := make([]domain.Decorator, 0, len(resp.Data))
	for _, d := range resp.Data {
		out = append(out, d.toDomain())
	}
	return out, nil
}
