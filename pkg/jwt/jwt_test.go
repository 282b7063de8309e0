package jwt

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func signToken(t *testing.T, secret string, claims gojwt.MapClaims) string {
	t.Helper()
	token := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestNewValidator_ShortSecret(t *testing.T) {
	_, err := NewValidator(Config{SecretKey: "too-short"})
	assert.Error(t, err)
}

func TestValidateToken(t *testing.T) {
	v, err := NewValidator(Config{SecretKey: testSecret})
	require.NoError(t, err)

	exp := time.Now().Add(time.Hour).Unix()
	token := signToken(t, testSecret, gojwt.MapClaims{
		"sub":   "user-1",
		"email": "user@example.com",
		"exp":   exp,
	})

	claims, err := v.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Sub)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, exp, claims.Exp)
}

func TestValidateToken_Rejections(t *testing.T) {
	v, err := NewValidator(Config{SecretKey: testSecret})
	require.NoError(t, err)

	tcs := []struct {
		name  string
		token string
	}{
		{
			name:  "garbage",
			token: "not.a.token",
		},
		{
			name: "wrong secret",
			token: signToken(t, "ffffffffffffffffffffffffffffffff", gojwt.MapClaims{
				"sub": "user-1",
				"exp": time.Now().Add(time.Hour).Unix(),
			}),
		},
		{
			name: "expired",
			token: signToken(t, testSecret, gojwt.MapClaims{
				"sub": "user-1",
				"exp": time.Now().Add(-time.Hour).Unix(),
			}),
		},
		{
			name: "missing sub",
			token: signToken(t, testSecret, gojwt.MapClaims{
				"exp": time.Now().Add(time.Hour).Unix(),
			}),
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			_, err := v.ValidateToken(tc.token)
			assert.Error(t, err)
		})
	}
}

func TestExtractUserID(t *testing.T) {
	v, err := NewValidator(Config{SecretKey: testSecret})
	require.NoError(t, err)

	token := signToken(t, testSecret, gojwt.MapClaims{
		"sub": "user-9",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	id, err := v.ExtractUserID(token)
	require.NoError(t, err)
	assert.Equal(t, "user-9", id)
}
