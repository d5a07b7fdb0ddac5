package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"styledecor/internal/domain"
)

type bookingDTO struct {
	ID                string `json:"_id"`
	ServiceID         string `json:"serviceId"`
	ServiceName       string `json:"serviceName"`
	ServiceCost       int    `json:"serviceCost"`
	BookingDate       string `json:"bookingDate"`
	Location          string `json:"location"`
	Status            string `json:"status"`
	PaymentStatus     string `json:"paymentStatus"`
	ProjectStatus     string `json:"projectStatus"`
	AssignedDecorator string `json:"assignedDecorator"`
	UserName          string `json:"userName"`
	UserEmail         string `json:"userEmail"`
	CreatedAt         string `json:"createdAt"`
}

func (d bookingDTO) toDomain() domain.Booking {
	return domain.Booking{
		ID:                d.ID,
		ServiceID:         d.ServiceID,
		ServiceName:       d.ServiceName,
		ServiceCost:       d.ServiceCost,
		BookingDate:       parseTime(d.BookingDate),
		Location:          d.Location,
		Status:            domain.BookingStatus(d.Status),
		PaymentStatus:     domain.PaymentState(d.PaymentStatus),
		ProjectStatus:     domain.ProjectStatus(d.ProjectStatus),
		AssignedDecorator: d.AssignedDecorator,
		UserName:          d.UserName,
		UserEmail:         d.UserEmail,
		CreatedAt:         parseTime(d.CreatedAt),
	}
}

type bookingListResponse struct {
	Data       []bookingDTO  `json:"data"`
	Pagination paginationDTO `json:"pagination"`
}

func (r bookingListResponse) toDomain() ([]domain.Booking, domain.Pagination) {
	bookings := make([]domain.Booking, 0, len(r.Data))
	for _, d := range r.Data {
		bookings = append(bookings, d.toDomain())
	}
	return bookings, r.Pagination.toDomain()
}

// CreateBooking books a service for the authenticated customer.
func (c *Client) CreateBooking(ctx context.Context, token string, req domain.BookingRequest) (domain.Booking, error) {
	payload := map[string]any{
		"serviceId":   req.ServiceID,
		"serviceName": req.ServiceName,
		"serviceCost": req.ServiceCost,
		"bookingDate": req.BookingDate,
		"location":    req.Location,
	}
	var resp struct {
		Data bookingDTO `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/bookings", token, payload, &resp); err != nil {
		return domain.Booking{}, err
	}
	return resp.Data.toDomain(), nil
}

// MyBookings lists the caller's own bookings, newest first.
func (c *Client) MyBookings(ctx context.Context, token string, page, limit int) ([]domain.Booking, domain.Pagination, error) {
	path := fmt.Sprintf("/api/bookings/my-bookings?page=%d&limit=%d", page, limit)
	var resp bookingListResponse
	if err := c.do(ctx, http.MethodGet, path, token, nil, &resp); err != nil {
		return nil, domain.Pagination{}, err
	}
	bookings, pag := resp.toDomain()
	return bookings, pag, nil
}

// CancelBooking deletes a pending booking owned by the caller.
func (c *Client) CancelBooking(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/bookings/"+url.PathEscape(id), token, nil, nil)
}

// AllBookings lists every booking. Admin only.
func (c *Client) AllBookings(ctx context.Context, token string, limit int) ([]domain.Booking, error) {
	path := fmt.Sprintf("/api/bookings/all?limit=%d", limit)
	var resp bookingListResponse
	if err := c.do(ctx, http.MethodGet, path, token, nil, &resp); err != nil {
		return nil, err
	}
	bookings, _ := resp.toDomain()
	return bookings, nil
}

// AssignedBookings lists the bookings assigned to the calling decorator.
func (c *Client) AssignedBookings(ctx context.Context, token string) ([]domain.Booking, error) {
	var resp bookingListResponse
	if err := c.do(ctx, http.MethodGet, "/api/bookings/decorator/assigned", token, nil, &resp); err != nil {
		return nil, err
	}
	bookings, _ := resp.toDomain()
	return bookings, nil
}

// AssignDecorator attaches a decorator to a confirmed booking. Admin only.
func (c *Client) AssignDecorator(ctx context.Context, token, bookingID, decoratorID string) error {
	payload := map[string]string{"decoratorId": decoratorID}
	return c.do(ctx, http.MethodPost, "/api/bookings/"+url.PathEscape(bookingID)+"/assign-decorator", token, payload, nil)
}

// UpdateProjectStatus advances the project state of an assigned booking.
func (c *Client) UpdateProjectStatus(ctx context.Context, token, bookingID string, status domain.ProjectStatus) error {
	payload := map[string]string{"projectStatus": string(status)}
	return c.do(ctx, http.MethodPut, "/api/bookings/"+url.PathEscape(bookingID)+"/project-status", token, payload, nil)
}
