package turnstile

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerify_EmptySecretSkipsCheck(t *testing.T) {
	v := NewVerifier("")

	ok, err := v.Verify(context.Background(), "anything")

	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestVerify_EmptyTokenFails(t *testing.T) {
	v := NewVerifier("secret")

	ok, err := v.Verify(context.Background(), "")

	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestVerify_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "secret", r.PostFormValue("secret"))
		assert.Equal(t, "client-token", r.PostFormValue("response"))
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	v := NewVerifierWithEndpoint("secret", srv.URL)

	ok, err := v.Verify(context.Background(), "client-token")

	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestVerify_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"error-codes":["invalid-input-response"]}`))
	}))
	defer srv.Close()

	v := NewVerifierWithEndpoint("secret", srv.URL)

	ok, err := v.Verify(context.Background(), "bad-token")

	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestVerify_EndpointDown(t *testing.T) {
	srv := httptest.NewServer(nil)
	srv.Close()

	v := NewVerifierWithEndpoint("secret", srv.URL)

	_, err := v.Verify(context.Background(), "token")

	assert.Error(t, err)
}
