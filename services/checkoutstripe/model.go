package checkoutstripe

type CreatePaymentRequest struct {
	Email string `json:"email" form:"email"`
}

type CreatePaymentResponse struct {
	URL string `json:"url"`
}
