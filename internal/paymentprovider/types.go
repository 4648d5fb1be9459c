package paymentprovider

// Price объект цены Stripe.
type Price struct {
	ID         string `json:"id"`
	Currency   string `json:"currency"`
	UnitAmount int64  `json:"unit_amount"`
}

// CheckoutSession объект сессии оплаты Stripe.
type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}
