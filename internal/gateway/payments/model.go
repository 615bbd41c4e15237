package payments

type chargeRequest struct {
	Amount         int64  `json:"amount"`
	IdempotencyKey string `json:"idempotency_key"`
}

type chargeResponse struct {
	ProviderRef string `json:"provider_ref"`
	Status      string `json:"status"`
}

type refundRequest struct {
	ProviderRef string `json:"provider_ref"`
	Amount      int64  `json:"amount"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
