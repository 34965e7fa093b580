package donation

import "time"

// CreateDonationRequest is sent by the donation form.
type CreateDonationRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Amount    int64  `json:"amount"`
	Message   string `json:"message,omitempty"`
	Anonymous bool   `json:"anonymous"`
}

// CreateDonationResponse is returned after the payment session exists.
type CreateDonationResponse struct {
	DonationID uint   `json:"donation_id"`
	OrderID    string `json:"order_id"`
	PaymentURL string `json:"payment_url"`
}

// PublicDonation is the redacted feed entry. Email and phone are
// never exposed; the name is replaced for anonymous donors.
type PublicDonation struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Amount    int64     `json:"amount"`
	Message   *string   `json:"message,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// AdminFilters narrows the admin donation list.
type AdminFilters struct {
	Status string
	From   *time.Time
	To     *time.Time
	Page   int
	Limit  int
}
