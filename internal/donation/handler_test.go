package donation

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/ruangpeduli/donation-backend/internal/payment"
)

type stubService struct {
	notifyErr error
	notified  []payment.Notification
}

func (s *stubService) Submit(context.Context, CreateDonationRequest) (*CreateDonationResponse, error) {
	return nil, errors.New("not used")
}

func (s *stubService) HandleNotification(_ context.Context, n payment.Notification) error {
	s.notified = append(s.notified, n)
	return s.notifyErr
}

func (s *stubService) PublicFeed(context.Context, int, int) ([]PublicDonation, int64, error) {
	return nil, 0, nil
}

func (s *stubService) AdminList(context.Context, AdminFilters) ([]Donation, int64, error) {
	return nil, 0, nil
}

func (s *stubService) Export(context.Context, AdminFilters, string) ([]byte, string, string, error) {
	return nil, "", "", errors.New("not used")
}

func notificationRouter(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/midtrans/notification", NewHandler(svc).Notification)
	return r
}

func TestNotificationAlwaysReturns200(t *testing.T) {
	cases := []struct {
		name string
		body string
		svc  *stubService
	}{
		{"valid settlement", `{"order_id":"DON-1","transaction_status":"settlement","fraud_status":"accept"}`, &stubService{}},
		{"malformed json", `{not json`, &stubService{}},
		{"service failure", `{"order_id":"DON-1","transaction_status":"settlement","fraud_status":"accept"}`, &stubService{notifyErr: errors.New("db down")}},
	}
	for _, tc := range cases {
		r := notificationRouter(tc.svc)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/midtrans/notification", strings.NewReader(tc.body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("%s: status = %d, want 200 (gateway must never see an error)", tc.name, w.Code)
		}
	}
}

func TestNotificationForwardsPayload(t *testing.T) {
	svc := &stubService{}
	r := notificationRouter(svc)
	body := `{"order_id":"DON-abc","transaction_status":"deny","fraud_status":"accept","payment_type":"credit_card"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/midtrans/notification", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if len(svc.notified) != 1 {
		t.Fatalf("service called %d times, want 1", len(svc.notified))
	}
	n := svc.notified[0]
	if n.OrderID != "DON-abc" || n.TransactionStatus != "deny" || n.FraudStatus != "accept" {
		t.Fatalf("forwarded notification = %+v", n)
	}
}
