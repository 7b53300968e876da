package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whyismeleige/rental-ads/pkg/apperr"
)

func TestTokenRoundTrip(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	token, err := m.Issue("64b0c2f9e13f4a2d9c000001")
	require.NoError(t, err)

	sub, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "64b0c2f9e13f4a2d9c000001", sub)
}

func TestTokenExpired(t *testing.T) {
	m := NewTokenManager("test-secret", -time.Minute)

	token, err := m.Issue("64b0c2f9e13f4a2d9c000001")
	require.NoError(t, err)

	_, err = m.Verify(token)
	require.Error(t, err)
	e := apperr.From(err)
	require.NotNil(t, e)
	assert.Equal(t, apperr.TypeAuthentication, e.Type)
}

func TestTokenWrongSecret(t *testing.T) {
	issuer := NewTokenManager("issuer-secret", time.Hour)
	verifier := NewTokenManager("other-secret", time.Hour)

	token, err := issuer.Issue("64b0c2f9e13f4a2d9c000001")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
	e := apperr.From(err)
	require.NotNil(t, e)
	assert.Equal(t, apperr.TypeAuthentication, e.Type)
}

func TestTokenMalformed(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, err := m.Verify(token)
		require.Error(t, err, "token %q should not verify", token)
		e := apperr.From(err)
		require.NotNil(t, e)
		assert.Equal(t, apperr.TypeAuthentication, e.Type)
	}
}

func TestTokenTampered(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	token, err := m.Issue("64b0c2f9e13f4a2d9c000001")
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = m.Verify(tampered)
	require.Error(t, err)
}
