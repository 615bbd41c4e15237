package payments

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/service/payment"
	retrierconfig "dispatch/pkg/retrier"
	"dispatch/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "payment-provider"

	chargesPath = "/v1/charges"
	refundsPath = "/v1/refunds"

	headerIdempotencyKey = "Idempotency-Key"
)

const (
	initialInterval = 200 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 5 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

// statusDeclined — терминальный отказ провайдера, ретраить его нельзя.
const statusDeclined = "declined"

var errDeclinedStatus = errors.New("provider declined charge")

// ProviderGateway — HTTP клиент платежного провайдера.
// Провайдер ключует списания по Idempotency-Key, поэтому повтор запроса
// с тем же ключом безопасен.
type ProviderGateway struct {
	baseURL       string
	webhookSecret []byte
	httpClient    doer
	retrier       retrier
}

func New(baseURL, webhookSecret string, timeout time.Duration) *ProviderGateway {
	return newWithClient(baseURL, webhookSecret, &http.Client{Timeout: timeout})
}

func newWithClient(baseURL, webhookSecret string, httpClient doer) *ProviderGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryable,
	}

	return &ProviderGateway{
		baseURL:       baseURL,
		webhookSecret: []byte(webhookSecret),
		httpClient:    httpClient,
		retrier:       backoff_adapter.New(retryConfig),
	}
}

func (g *ProviderGateway) Charge(ctx context.Context, amount entities.Money, idempotencyKey string) (string, error) {
	body, err := json.Marshal(chargeRequest{
		Amount:         int64(amount),
		IdempotencyKey: idempotencyKey,
	})
	if err != nil {
		return "", fmt.Errorf("gateway payments, marshal charge: %w", err)
	}

	var resp chargeResponse

	err = g.executeWithMetrics(ctx, "Charge", func(ctx context.Context) error {
		return g.post(ctx, chargesPath, idempotencyKey, body, &resp)
	})
	if err != nil {
		if errors.Is(err, errDeclinedStatus) {
			return "", payment.ErrChargeDeclined
		}
		return "", fmt.Errorf("gateway payments, charge: %w", err)
	}

	if resp.Status == statusDeclined {
		return "", payment.ErrChargeDeclined
	}
	if resp.ProviderRef == "" {
		return "", fmt.Errorf("gateway payments, charge: empty provider_ref")
	}

	return resp.ProviderRef, nil
}

func (g *ProviderGateway) Refund(ctx context.Context, providerRef string, amount entities.Money) error {
	body, err := json.Marshal(refundRequest{
		ProviderRef: providerRef,
		Amount:      int64(amount),
	})
	if err != nil {
		return fmt.Errorf("gateway payments, marshal refund: %w", err)
	}

	// Возвраты провайдер ключует по provider_ref, отдельный ключ не нужен.
	err = g.executeWithMetrics(ctx, "Refund", func(ctx context.Context) error {
		return g.post(ctx, refundsPath, "", body, nil)
	})
	if err != nil {
		return fmt.Errorf("gateway payments, refund %s: %w", providerRef, err)
	}

	return nil
}

// VerifySignature сверяет HMAC-SHA256 подпись вебхука в hex.
func (g *ProviderGateway) VerifySignature(payload []byte, signature string) bool {
	mac := hmac.New(sha256.New, g.webhookSecret)
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}

func (g *ProviderGateway) post(ctx context.Context, path, idempotencyKey string, body []byte, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if idempotencyKey != "" {
		req.Header.Set(headerIdempotencyKey, idempotencyKey)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusPaymentRequired:
		return errDeclinedStatus
	case resp.StatusCode == http.StatusTooManyRequests:
		return &transientError{status: resp.StatusCode}
	case resp.StatusCode >= http.StatusInternalServerError:
		return &transientError{status: resp.StatusCode}
	case resp.StatusCode >= http.StatusBadRequest:
		var errResp errorResponse
		if unmarshalErr := json.Unmarshal(raw, &errResp); unmarshalErr == nil && errResp.Code != "" {
			return fmt.Errorf("provider error %d: %s", resp.StatusCode, errResp.Code)
		}
		return fmt.Errorf("provider error %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}

	return nil
}

type transientError struct {
	status int
}

func (e *transientError) Error() string {
	return fmt.Sprintf("provider transient error %d", e.status)
}

func isRetryable(err error) bool {
	if err == nil {
		return false
	}

	var transient *transientError
	if errors.As(err, &transient) {
		return true
	}

	if errors.Is(err, errDeclinedStatus) {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	// Сетевые ошибки до получения ответа тоже транзиентны,
	// списание при этом защищено Idempotency-Key.
	var netErr net.Error
	return errors.As(err, &netErr)
}
