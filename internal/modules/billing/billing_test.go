package billing

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meritlives/tools-core/internal/config"
)

func TestPlanCatalog(t *testing.T) {
	all := Plans()
	require.Len(t, all, 4)

	trial, ok := PlanByID("trial")
	require.True(t, ok)
	assert.EqualValues(t, 0, trial.AmountKobo)
	assert.Equal(t, 3, trial.DailyGenerations)
	assert.Equal(t, 10, trial.SavedContent)
	assert.Equal(t, 7, trial.DurationDays)

	basic, ok := PlanByID("basic")
	require.True(t, ok)
	assert.EqualValues(t, 1900000, basic.AmountKobo)
	assert.Equal(t, 10, basic.DailyGenerations)
	assert.Equal(t, 50, basic.SavedContent)

	premium, ok := PlanByID("premium")
	require.True(t, ok)
	assert.EqualValues(t, 4900000, premium.AmountKobo)
	assert.Equal(t, Unlimited, premium.DailyGenerations)
	assert.Equal(t, Unlimited, premium.SavedContent)

	pro, ok := PlanByID("pro")
	require.True(t, ok)
	assert.EqualValues(t, 9900000, pro.AmountKobo)

	_, ok = PlanByID("enterprise")
	assert.False(t, ok)
}

func TestWebhookSignature(t *testing.T) {
	c := NewPaystackClient(config.PaystackConfig{SecretKey: "sk_test_secret"})
	body := []byte(`{"event":"charge.success","data":{"reference":"ref_1"}}`)

	mac := hmac.New(sha512.New, []byte("sk_test_secret"))
	mac.Write(body)
	good := hex.EncodeToString(mac.Sum(nil))

	assert.True(t, c.VerifyWebhookSignature(body, good))
	assert.False(t, c.VerifyWebhookSignature(body, "deadbeef"))
	assert.False(t, c.VerifyWebhookSignature([]byte(`tampered`), good))
}

func TestVerifyTransaction(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer sk_test_secret", r.Header.Get("Authorization"))
		assert.Equal(t, "/transaction/verify/ref_42", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":true,"message":"Verification successful","data":{"status":"success","reference":"ref_42","amount":1900000,"channel":"card","customer":{"email":"a@b.c","customer_code":"CUS_1"}}}`))
	}))
	defer srv.Close()

	c := NewPaystackClient(config.PaystackConfig{SecretKey: "sk_test_secret"})
	c.baseURL = srv.URL

	txn, err := c.VerifyTransaction(context.Background(), "ref_42")
	require.NoError(t, err)
	assert.Equal(t, "success", txn.Status)
	assert.EqualValues(t, 1900000, txn.Amount)
	assert.Equal(t, "a@b.c", txn.Customer.Email)
	assert.Equal(t, "CUS_1", txn.Customer.CustomerCode)
}

func TestVerifyTransactionFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"status":false,"message":"Transaction reference not found"}`))
	}))
	defer srv.Close()

	c := NewPaystackClient(config.PaystackConfig{SecretKey: "sk_test_secret"})
	c.baseURL = srv.URL

	_, err := c.VerifyTransaction(context.Background(), "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Transaction reference not found")
}
