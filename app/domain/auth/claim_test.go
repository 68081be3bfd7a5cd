package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"flowrelay.ai/flow-api-gateway/config/environment_variables"
)

func withJWTSecret(t *testing.T, secret string) {
	t.Helper()
	saved := environment_variables.EnvironmentVariables.JWT_SECRET
	environment_variables.EnvironmentVariables.JWT_SECRET = []byte(secret)
	t.Cleanup(func() {
		environment_variables.EnvironmentVariables.JWT_SECRET = saved
	})
}

func TestClaimRoundTrip(t *testing.T) {
	withJWTSecret(t, "test-secret")

	claim := UserClaim{
		PublicID:  "user_abc",
		SessionID: "sess-1",
		Role:      "member",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user_abc",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	signed, err := CreateJwtSignedString(claim)
	if err != nil {
		t.Fatalf("CreateJwtSignedString: %v", err)
	}

	parsed, err := ParseJwtSignedString(signed)
	if err != nil {
		t.Fatalf("ParseJwtSignedString: %v", err)
	}
	if parsed.PublicID != "user_abc" || parsed.SessionID != "sess-1" || parsed.Role != "member" {
		t.Errorf("parsed = %+v", parsed)
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	withJWTSecret(t, "test-secret")

	claim := UserClaim{
		PublicID:  "user_abc",
		SessionID: "sess-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	signed, err := CreateJwtSignedString(claim)
	if err != nil {
		t.Fatalf("CreateJwtSignedString: %v", err)
	}
	if _, err := ParseJwtSignedString(signed); err == nil {
		t.Error("expired token was accepted")
	}
}

func TestParseRejectsForeignSignature(t *testing.T) {
	withJWTSecret(t, "test-secret")
	claim := UserClaim{PublicID: "user_abc", RegisteredClaims: jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	signed, err := CreateJwtSignedString(claim)
	if err != nil {
		t.Fatalf("CreateJwtSignedString: %v", err)
	}

	environment_variables.EnvironmentVariables.JWT_SECRET = []byte("other-secret")
	if _, err := ParseJwtSignedString(signed); err == nil {
		t.Error("token signed with a different secret was accepted")
	}
}

func TestHashPassword(t *testing.T) {
	hashed, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hashed == "s3cret" || hashed == "" {
		t.Errorf("hash = %q", hashed)
	}
}
