package identity_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/ascend/internal/identity"
)

const secret = "test-secret-at-least-32-characters!!"

func sign(t *testing.T, method jwt.SigningMethod, key any, claims identity.Claims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)

	return token
}

func validClaims() identity.Claims {
	return identity.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-42",
			Issuer:    "https://id.example.com",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Email:     "ada@example.com",
		FirstName: "Ada",
	}
}

func TestVerifier_Verify(t *testing.T) {
	v := identity.NewVerifier(secret, "https://id.example.com")

	expired := validClaims()
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	otherIssuer := validClaims()
	otherIssuer.Issuer = "https://evil.example.com"

	noSubject := validClaims()
	noSubject.Subject = ""

	noExpiry := validClaims()
	noExpiry.ExpiresAt = nil

	tests := []struct {
		name    string
		token   string
		wantErr bool
	}{
		{name: "valid", token: sign(t, jwt.SigningMethodHS256, []byte(secret), validClaims())},
		{name: "empty", token: "", wantErr: true},
		{name: "garbage", token: "not.a.jwt", wantErr: true},
		{name: "expired", token: sign(t, jwt.SigningMethodHS256, []byte(secret), expired), wantErr: true},
		{name: "wrong issuer", token: sign(t, jwt.SigningMethodHS256, []byte(secret), otherIssuer), wantErr: true},
		{name: "wrong secret", token: sign(t, jwt.SigningMethodHS256, []byte("another-secret-of-sufficient-size"), validClaims()), wantErr: true},
		{name: "other hmac method", token: sign(t, jwt.SigningMethodHS512, []byte(secret), validClaims()), wantErr: true},
		{name: "no subject", token: sign(t, jwt.SigningMethodHS256, []byte(secret), noSubject), wantErr: true},
		{name: "no expiry", token: sign(t, jwt.SigningMethodHS256, []byte(secret), noExpiry), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := v.Verify(tt.token)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, claims)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "user-42", claims.Subject)
			assert.Equal(t, "ada@example.com", claims.Email)
			assert.Equal(t, "Ada", claims.FirstName)
		})
	}
}

func TestVerifier_NoIssuerConfigured(t *testing.T) {
	claims := validClaims()
	claims.Issuer = "anyone"

	got, err := identity.NewVerifier(secret, "").Verify(sign(t, jwt.SigningMethodHS256, []byte(secret), claims))
	require.NoError(t, err)
	assert.Equal(t, "user-42", got.Subject)
}
