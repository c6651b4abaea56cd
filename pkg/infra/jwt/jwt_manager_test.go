package jwt

import (
	"testing"
	"time"

	"github.com/NeuralTrust/TrustPost/pkg/config"
	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManagerWithSecret(secret string) Manager {
	return NewJwtManager(&config.JWTConfig{Secret: secret, Issuer: "trustpost"})
}

func signTokenWithSecret(secret string, claims jwtlib.Claims) (string, error) {
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func TestCreateToken_AndDecode(t *testing.T) {
	mgr := newManagerWithSecret("test-secret")

	token, err := mgr.CreateToken("user-42", RoleModerator, time.Hour)
	require.NoError(t, err)

	claims, err := mgr.DecodeToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", claims.Subject)
	assert.True(t, claims.IsModerator())
}

func TestDecodeToken_InvalidSignature(t *testing.T) {
	claims := &Claims{RegisteredClaims: jwtlib.RegisteredClaims{
		Subject:  "u",
		Issuer:   "trustpost",
		IssuedAt: jwtlib.NewNumericDate(time.Now()),
	}}
	signed, err := signTokenWithSecret("other-secret", claims)
	require.NoError(t, err)

	_, err = newManagerWithSecret("test-secret").DecodeToken(signed)
	assert.Equal(t, ErrInvalidToken, err)
}

func TestDecodeToken_Expired(t *testing.T) {
	claims := &Claims{RegisteredClaims: jwtlib.RegisteredClaims{
		Subject:   "u",
		Issuer:    "trustpost",
		IssuedAt:  jwtlib.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(-1 * time.Hour)),
	}}
	signed, err := signTokenWithSecret("expire-secret", claims)
	require.NoError(t, err)

	_, err = newManagerWithSecret("expire-secret").DecodeToken(signed)
	assert.Equal(t, ErrExpiredToken, err)
}

func TestDecodeToken_WrongIssuer(t *testing.T) {
	claims := &Claims{RegisteredClaims: jwtlib.RegisteredClaims{Subject: "u", Issuer: "someone-else"}}
	signed, err := signTokenWithSecret("s", claims)
	require.NoError(t, err)

	_, err = newManagerWithSecret("s").DecodeToken(signed)
	assert.Equal(t, ErrInvalidToken, err)
}

func TestDecodeToken_MissingSubject(t *testing.T) {
	mgr := newManagerWithSecret("s")
	token, err := mgr.CreateToken("", RoleUser, time.Minute)
	require.NoError(t, err)

	_, err = mgr.DecodeToken(token)
	assert.Equal(t, ErrMissingUser, err)
}

func TestDecodeToken_Garbage(t *testing.T) {
	_, err := newManagerWithSecret("s").DecodeToken("not.a.token")
	assert.Equal(t, ErrInvalidToken, err)
}
