package response_models

type CreateCheckoutResponse struct {
	SessionID   string `json:"session_id"`
	CheckoutURL string `json:"checkout_url"`
}

type PaymentStatusResponse struct {
	HasAccess bool `json:"has_access"`
	Success   bool `json:"success"`
	Cancelled bool `json:"cancelled"`
}
