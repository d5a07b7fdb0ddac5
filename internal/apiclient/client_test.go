package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"styledecor/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 5*time.Second)
}

func TestLoginDecodesTokenAndUser(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/login", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var creds Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		require.Equal(t, "mina@example.com", creds.Email)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"token": "tok-1",
			"user": map[string]any{
				"_id":   "u1",
				"name":  "Mina",
				"email": "mina@example.com",
				"role":  "user",
			},
		})
	})

	token, user, err := c.Login(context.Background(), Credentials{Email: "mina@example.com", Password: "hunter2"})
	require.NoError(t, err)
	require.Equal(t, "tok-1", token)
	require.Equal(t, domain.RoleUser, user.Role)
	require.Equal(t, domain.UserStatusActive, user.Status, "missing status defaults to active")
}

func TestLoginSurfacesServerMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"invalid credentials"}`))
	})

	_, _, err := c.Login(context.Background(), Credentials{Email: "x@example.com", Password: "wrong"})
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	apiErr, ok := asStatusError(err)
	require.True(t, ok)
	require.Equal(t, http.StatusUnauthorized, apiErr.Status)
	require.Equal(t, "invalid credentials", apiErr.Message)
}

func TestProfileSendsBearerToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"user":{"_id":"u1","name":"Mina","role":"admin","decoratorInfo":null}}`))
	})

	user, err := c.Profile(context.Background(), "tok-1")
	require.NoError(t, err)
	require.Equal(t, domain.RoleAdmin, user.Role)
	require.Nil(t, user.DecoratorInfo)
}

func TestProfileRejectsUnknownRole(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"user":{"_id":"u1","role":"superuser"}}`))
	})

	_, err := c.Profile(context.Background(), "tok-1")
	require.Error(t, err)
	require.Contains(t, err.Error(), "superuser")
}

func TestListServicesBuildsQuery(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/services", r.URL.Path)
		q := r.URL.Query()
		require.Equal(t, "stage", q.Get("search"))
		require.Equal(t, "Wedding", q.Get("category"))
		require.Equal(t, "cost_asc", q.Get("sort"))
		require.Equal(t, "2", q.Get("page"))
		require.Equal(t, "12", q.Get("limit"))

		_, _ = w.Write([]byte(`{
			"data":[{"_id":"s1","service_name":"Wedding Stage","service_category":"Wedding","cost":15000,"unit":"event"}],
			"pagination":{"page":2,"limit":12,"total":25,"totalPages":3}
		}`))
	})

	services, pag, err := c.ListServices(context.Background(), domain.ServiceQuery{
		Search: "stage", Category: "Wedding", Sort: "cost_asc", Page: 2, Limit: 12,
	})
	require.NoError(t, err)
	require.Len(t, services, 1)
	require.Equal(t, "Wedding Stage", services[0].Name)
	require.Equal(t, 15000, services[0].Cost)
	require.Equal(t, domain.Pagination{Page: 2, Limit: 12, Total: 25, TotalPages: 3}, pag)
}

func TestGetServiceNotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"service not found"}`))
	})

	_, err := c.GetService(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateBookingPayload(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/bookings", r.URL.Path)

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		require.Equal(t, "s1", payload["serviceId"])
		require.Equal(t, "2025-06-01", payload["bookingDate"])
		require.Equal(t, "Gulshan 2, Dhaka", payload["location"])

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data":{"_id":"b1","serviceId":"s1","status":"pending","paymentStatus":"unpaid","bookingDate":"2025-06-01"}}`))
	})

	booking, err := c.CreateBooking(context.Background(), "tok", domain.BookingRequest{
		ServiceID: "s1", ServiceName: "Wedding Stage", ServiceCost: 15000,
		BookingDate: "2025-06-01", Location: "Gulshan 2, Dhaka",
	})
	require.NoError(t, err)
	require.Equal(t, "b1", booking.ID)
	require.Equal(t, domain.BookingPending, booking.Status)
	require.Equal(t, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), booking.BookingDate)
}

func TestAssignDecorator(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/bookings/b1/assign-decorator", r.URL.Path)
		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		require.Equal(t, "d9", payload["decoratorId"])
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, c.AssignDecorator(context.Background(), "tok", "b1", "d9"))
}

func TestUpdateProjectStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/bookings/b1/project-status", r.URL.Path)
		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		require.Equal(t, "completed", payload["projectStatus"])
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, c.UpdateProjectStatus(context.Background(), "tok", "b1", domain.ProjectCompleted))
}

func TestTransportFailureIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	c := New(srv.URL, time.Second)
	_, err := c.Profile(context.Background(), "tok")
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrUnavailable)
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2025-06-01T10:30:00Z", time.Date(2025, time.June, 1, 10, 30, 0, 0, time.UTC)},
		{"2025-06-01", time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)},
		{"", time.Time{}},
		{"not a time", time.Time{}},
	}
	for _, tt := range tests {
		if got := parseTime(tt.in); !got.Equal(tt.want) {
			t.Errorf("parseTime(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func asStatusError(err error) (*APIError, bool) {
	apiErr, ok := err.(*APIError)
	return apiErr, ok
}
