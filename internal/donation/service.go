package donation

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ruangpeduli/donation-backend/internal/domain"
	"github.com/ruangpeduli/donation-backend/internal/payment"
	"github.com/ruangpeduli/donation-backend/internal/validation"
	"github.com/ruangpeduli/donation-backend/utils"
)

type Service interface {
	Submit(ctx context.Context, req CreateDonationRequest) (*CreateDonationResponse, error)
	HandleNotification(ctx context.Context, n payment.Notification) error
	PublicFeed(ctx context.Context, page, limit int) ([]PublicDonation, int64, error)
	AdminList(ctx context.Context, filters AdminFilters) ([]Donation, int64, error)
	Export(ctx context.Context, filters AdminFilters, format string) ([]byte, string, string, error)
}

type service struct {
	repo     Repository
	gateway  payment.Gateway
	exporter Exporter
}

func NewService(repo Repository, gateway payment.Gateway) Service {
	return &service{
		repo:     repo,
		gateway:  gateway,
		exporter: NewExporter(),
	}
}

// Submit validates the request, persists the pending donation in one
// statement (order id pre-generated) and opens the payment session.
// The stored amount is always the donor amount; only the total sent
// to the gateway includes the fee surcharge.
func (s *service) Submit(ctx context.Context, req CreateDonationRequest) (*CreateDonationResponse, error) {
	if err := validation.ValidateName(req.Name); err != nil {
		return nil, err
	}
	if err := validation.ValidateEmail(req.Email); err != nil {
		return nil, err
	}
	if err := validation.ValidatePhone(req.Phone); err != nil {
		return nil, err
	}
	if err := validation.ValidateAmount(req.Amount); err != nil {
		return nil, err
	}

	name := validation.SanitizeText(req.Name)
	// the address grammar is already enforced; escaping would corrupt
	// legal characters like & or ' before they reach the gateway
	email := strings.TrimSpace(req.Email)

	orderID := OrderIDPrefix + uuid.NewString()

	d := &Donation{
		Name:      name,
		Email:     email,
		Amount:    req.Amount,
		Anonymous: req.Anonymous,
		Status:    StatusPending,
		OrderID:   orderID,
	}
	if req.Phone != "" {
		phone := validation.SanitizeText(req.Phone)
		d.Phone = &phone
	}
	if req.Message != "" {
		msg := validation.SanitizeMessage(req.Message)
		d.Message = &msg
	}

	if err := s.repo.Create(ctx, d); err != nil {
		return nil, domain.InternalError{Msg: "failed to create donation", Err: err}
	}

	fee := Fee(req.Amount)
	total := req.Amount + fee

	sess, err := s.gateway.CreateTransaction(orderID, total, name, email)
	if err != nil {
		// compensating write before surfacing the gateway failure
		if _, uerr := s.repo.UpdateStatusByOrderID(ctx, orderID, StatusFailed); uerr != nil {
			log.Printf("failed to mark donation %s failed after gateway error: %v", orderID, uerr)
		}
		utils.Emit("donation_gateway_failed", map[string]any{
			"order_id": orderID,
			"amount":   req.Amount,
		})
		return nil, err
	}

	paymentURL := sess.RedirectURL
	if paymentURL == "" {
		paymentURL = s.gateway.PaymentURL(sess.Token)
	}

	utils.Emit("donation_initiated", map[string]any{
		"donation_id": d.ID,
		"order_id":    orderID,
		"amount":      req.Amount,
		"fee":         fee,
		"total":       total,
	})

	return &CreateDonationResponse{
		DonationID: d.ID,
		OrderID:    orderID,
		PaymentURL: paymentURL,
	}, nil
}

// HandleNotification applies one webhook delivery. The update is a
// direct SET keyed by order id: re-delivering a terminal notification
// re-applies the same status. There is no monotonicity guard, so a
// late cancel after a settlement reverts the donation; the gateway is
// trusted to deliver terminal states in order.
func (s *service) HandleNotification(ctx context.Context, n payment.Notification) error {
	var status string
	switch payment.MapStatus(n.TransactionStatus, n.FraudStatus) {
	case payment.OutcomeSuccess:
		status = StatusSuccess
	case payment.OutcomeFailed:
		status = StatusFailed
	default:
		log.Printf("webhook ignored: order_id=%s transaction_status=%s fraud_status=%s",
			n.OrderID, n.TransactionStatus, n.FraudStatus)
		return nil
	}

	affected, err := s.repo.UpdateStatusByOrderID(ctx, n.OrderID, status)
	if err != nil {
		return domain.InternalError{Msg: "failed to update donation status", Err: err}
	}
	if affected == 0 {
		log.Printf("webhook matched no donation: order_id=%s", n.OrderID)
	}

	utils.Emit("donation_status_updated", map[string]any{
		"order_id":           n.OrderID,
		"status":             status,
		"transaction_status": n.TransactionStatus,
		"payment_type":       n.PaymentType,
	})
	return nil
}

// PublicFeed returns one redacted page of donations. Email and phone
// never leave the store; anonymous donors get the placeholder name.
func (s *service) PublicFeed(ctx context.Context, page, limit int) ([]PublicDonation, int64, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, 0, domain.InternalError{Msg: "failed to count donations", Err: err}
	}

	rows, err := s.repo.ListPage(ctx, utils.Offset(page, limit), limit)
	if err != nil {
		return nil, 0, domain.InternalError{Msg: "failed to list donations", Err: err}
	}

	feed := make([]PublicDonation, 0, len(rows))
	for _, d := range rows {
		name := d.Name
		if d.Anonymous {
			name = AnonymousDonorName
		}
		feed = append(feed, PublicDonation{
			ID:        d.ID,
			Name:      name,
			Amount:    d.Amount,
			Message:   d.Message,
			Status:    d.Status,
			CreatedAt: d.CreatedAt,
		})
	}
	return feed, total, nil
}

func (s *service) AdminList(ctx context.Context, filters AdminFilters) ([]Donation, int64, error) {
	donations, total, err := s.repo.ListFiltered(ctx, filters)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []Donation{}, 0, nil
		}
		return nil, 0, domain.InternalError{Msg: "failed to list donations", Err: err}
	}
	return donations, total, nil
}

func (s *service) Export(ctx context.Context, filters AdminFilters, format string) ([]byte, string, string, error) {
	// export everything matching the filters, unpaginated
	filters.Page = 0
	filters.Limit = 0
	donations, _, err := s.repo.ListFiltered(ctx, filters)
	if err != nil {
		return nil, "", "", domain.InternalError{Msg: "failed to list donations", Err: err}
	}
	return s.exporter.Export(format, donations)
}
