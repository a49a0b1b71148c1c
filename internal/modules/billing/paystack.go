package billing

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/meritlives/tools-core/internal/config"
)

const paystackBaseURL = "https://api.paystack.co"

// PaystackClient is a thin wrapper over the Paystack REST API.
type PaystackClient struct {
	secretKey string
	baseURL   string
	hc        *http.Client
}

func NewPaystackClient(cfg config.PaystackConfig) *PaystackClient {
	return &PaystackClient{
		secretKey: cfg.SecretKey,
		baseURL:   paystackBaseURL,
		hc:        &http.Client{Timeout: 30 * time.Second},
	}
}

// Enabled reports whether a secret key is configured.
func (c *PaystackClient) Enabled() bool { return c != nil && c.secretKey != "" }

// VerifyWebhookSignature checks the x-paystack-signature header against the
// raw request body. Paystack signs with HMAC-SHA512 over the secret key.
func (c *PaystackClient) VerifyWebhookSignature(body []byte, signature string) bool {
	mac := hmac.New(sha512.New, []byte(c.secretKey))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

type paystackEnvelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type InitializeTransactionRequest struct {
	Email       string                 `json:"email"`
	Amount      int64                  `json:"amount"`
	Currency    string                 `json:"currency"`
	CallbackURL string                 `json:"callback_url,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}

type TransactionData struct {
	AuthorizationURL string `json:"authorization_url,omitempty"`
	AccessCode       string `json:"access_code,omitempty"`
	Reference        string `json:"reference,omitempty"`
	Status           string `json:"status,omitempty"`
	Amount           int64  `json:"amount,omitempty"`
	Channel          string `json:"channel,omitempty"`
	PaidAt           string `json:"paid_at,omitempty"`
	Customer         struct {
		Email        string `json:"email"`
		CustomerCode string `json:"customer_code"`
	} `json:"customer"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// InitializeTransaction starts a hosted checkout and returns the redirect handles.
func (c *PaystackClient) InitializeTransaction(ctx context.Context, req InitializeTransactionRequest) (*TransactionData, error) {
	var data TransactionData
	if err := c.do(ctx, http.MethodPost, "/transaction/initialize", req, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// VerifyTransaction fetches the settled state of a transaction by reference.
func (c *PaystackClient) VerifyTransaction(ctx context.Context, reference string) (*TransactionData, error) {
	var data TransactionData
	path := "/transaction/verify/" + url.PathEscape(reference)
	if err := c.do(ctx, http.MethodGet, path, nil, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// ListTransactions returns the customer's transactions, newest first.
func (c *PaystackClient) ListTransactions(ctx context.Context, customerEmail string) ([]TransactionData, error) {
	var data []TransactionData
	path := "/transaction?customer=" + url.QueryEscape(customerEmail)
	if err := c.do(ctx, http.MethodGet, path, nil, &data); err != nil {
		return nil, err
	}
	return data, nil
}

// DisableSubscription turns off auto-renewal for a Paystack subscription.
func (c *PaystackClient) DisableSubscription(ctx context.Context, code, emailToken string) error {
	body := map[string]string{"code": code, "token": emailToken}
	return c.do(ctx, http.MethodPost, "/subscription/disable", body, nil)
}

func (c *PaystackClient) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("paystack request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return err
	}

	var envelope paystackEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("paystack returned malformed response (status %d)", resp.StatusCode)
	}
	if resp.StatusCode >= 400 || !envelope.Status {
		msg := envelope.Message
		if msg == "" {
			msg = resp.Status
		}
		return fmt.Errorf("paystack error: %s", msg)
	}
	if out != nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("paystack data decode failed: %w", err)
		}
	}
	return nil
}
