package request_models

import "strings"

// CheckoutSessionPayload is the subset of a Stripe checkout.session object
// the access updater reads.
type CheckoutSessionPayload struct {
	ID              string `json:"id"`
	CustomerEmail   string `json:"customer_email"`
	PaymentStatus   string `json:"payment_status"`
	CustomerDetails *struct {
		Email string `json:"email"`
	} `json:"customer_details"`
}

// PurchaserEmail prefers customer_email and falls back to customer_details.email.
func (p CheckoutSessionPayload) PurchaserEmail() string {
	if email := strings.TrimSpace(p.CustomerEmail); email != "" {
		return email
	}
	if p.CustomerDetails != nil {
		return strings.TrimSpace(p.CustomerDetails.Email)
	}
	return ""
}
