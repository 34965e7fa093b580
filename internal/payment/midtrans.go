package payment

import (
	"fmt"
	"strings"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"github.com/ruangpeduli/donation-backend/internal/domain"
)

// Session is the hosted-payment session the gateway hands back.
type Session struct {
	Token       string
	RedirectURL string
}

// Gateway creates hosted-payment sessions. The donation service only
// depends on this interface so tests can substitute a fake.
type Gateway interface {
	CreateTransaction(orderID string, grossAmount int64, customerName, customerEmail string) (*Session, error)
	PaymentURL(token string) string
}

type midtransGateway struct {
	client  snap.Client
	sandbox bool
	siteURL string
}

// NewMidtransGateway builds a Snap client. Sandbox credentials carry
// the SB- prefix, which is what selects the sandbox endpoint.
func NewMidtransGateway(serverKey, siteURL string) Gateway {
	sandbox := strings.HasPrefix(serverKey, "SB-")
	env := midtrans.Production
	if sandbox {
		env = midtrans.Sandbox
	}

	var client snap.Client
	client.New(serverKey, env)

	return &midtransGateway{
		client:  client,
		sandbox: sandbox,
		siteURL: siteURL,
	}
}

func (g *midtransGateway) CreateTransaction(orderID string, grossAmount int64, customerName, customerEmail string) (*Session, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: grossAmount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: customerName,
			Email: customerEmail,
		},
		Callbacks: &snap.Callbacks{
			Finish: g.siteURL,
		},
	}

	resp, err := g.client.CreateTransaction(req)
	if err != nil {
		return nil, domain.GatewayError{Service: "midtrans", Err: err}
	}
	if resp == nil || resp.Token == "" {
		return nil, domain.GatewayError{Service: "midtrans", Err: fmt.Errorf("empty snap response")}
	}

	return &Session{
		Token:       resp.Token,
		RedirectURL: resp.RedirectURL,
	}, nil
}

// PaymentURL is the deterministic fallback when the gateway response
// carries no redirect URL.
func (g *midtransGateway) PaymentURL(token string) string {
	if g.sandbox {
		return "https://app.sandbox.midtrans.com/snap/v2/vtweb/" + token
	}
	return "https://app.midtrans.com/snap/v2/vtweb/" + token
}
