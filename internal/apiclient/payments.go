package apiclient

import (
	"context"
	"net/http"

	"styledecor/internal/domain"
)

type paymentDTO struct {
	ID            string `json:"_id"`
	BookingID     string `json:"bookingId"`
	ServiceName   string `json:"serviceName"`
	Amount        int    `json:"amount"`
	TransactionID string `json:"transactionId"`
	Status        string `json:"status"`
	UserEmail     string `json:"userEmail"`
	CreatedAt     string `json:"createdAt"`
}

func (d paymentDTO) toDomain() domain.Payment {
	return domain.Payment{
		ID:            d.ID,
		BookingID:     d.BookingID,
		ServiceName:   d.ServiceName,
		Amount:        d.Amount,
		TransactionID: d.TransactionID,
		Status:        d.Status,
		UserEmail:     d.UserEmail,
		CreatedAt:     parseTime(d.CreatedAt),
	}
}

// CreatePaymentIntent asks the API for a hosted card-widget handle for the
// given booking.
func (c *Client) CreatePaymentIntent(ctx context.Context, token, bookingID string) (domain.PaymentIntent, error) {
	payload := map[string]string{"bookingId": bookingID}
	var resp struct {
		ClientSecret    string `json:"clientSecret"`
		PaymentIntentID string `json:"paymentIntentId"`
		Amount          int    `json:"amount"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/payments/create-payment-intent", token, payload, &resp); err != nil {
		return domain.PaymentIntent{}, err
	}
	return domain.PaymentIntent{
		ClientSecret: resp.ClientSecret,
		IntentID:     resp.PaymentIntentID,
		Amount:       resp.Amount,
	}, nil
}

// ConfirmPayment records a widget-settled payment against its booking.
func (c *Client) ConfirmPayment(ctx context.Context, token, bookingID, intentID, transactionID string) error {
	payload := map[string]string{
		"bookingId":       bookingID,
		"paymentIntentId": intentID,
		"transactionId":   transactionID,
	}
	return c.do(ctx, http.MethodPost, "/api/payments/confirm", token, payload, nil)
}

// PaymentHistory lists the caller's settled payments.
func (c *Client) PaymentHistory(ctx context.Context, token string) ([]domain.Payment, error) {
	var resp struct {
		Data []paymentDTO `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/payments/history", token, nil, &resp); err != nil {
		return nil, err
	}
	payments := make([]domain.Payment, 0, len(resp.Data))
	for _, d := range resp.Data {
		payments = append(payments, d.toDomain())
	}
	return payments, nil
}

// AllPayments lists every payment plus the running revenue total. Admin only.
func (c *Client) AllPayments(ctx context.Context, token string) ([]domain.Payment, int, error) {
	var resp struct {
		Data         []paymentDTO `json:"data"`
		TotalRevenue int          `json:"totalRevenue"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/payments/all", token, nil, &resp); err != nil {
		return nil, 0, err
	}
	payments := make([]domain.Payment, 0, len(resp.Data))
	for _, d := range resp.Data {
		payments = append(payments, d.toDomain())
	}
	return payments, resp.TotalRevenue, nil
}
