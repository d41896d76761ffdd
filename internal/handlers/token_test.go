package handlers

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssueAccessTokenRoundTrip(t *testing.T) {
	const secret = "test-secret"

	signed, err := IssueAccessToken("alice@x.com", secret, time.Hour)
	if err != nil {
		t.Fatalf("IssueAccessToken returned error: %v", err)
	}

	token, err := jwt.Parse(signed, func(tok *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("issued token failed verification: %v", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("expected map claims")
	}
	if claims["email"] != "alice@x.com" {
		t.Fatalf("expected email claim alice@x.com, got %v", claims["email"])
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		t.Fatal("expected numeric exp claim")
	}
	remaining := time.Until(time.Unix(int64(exp), 0))
	if remaining < 59*time.Minute || remaining > 61*time.Minute {
		t.Fatalf("expected roughly one hour expiry, got %v", remaining)
	}
}

// Emails are carried verbatim; an account registered with surrounding
// whitespace gets a token for exactly that string.
func TestIssueAccessTokenKeepsRawEmail(t *testing.T) {
	const secret = "test-secret"
	const raw = "  alice@x.com "

	signed, err := IssueAccessToken(raw, secret, time.Hour)
	if err != nil {
		t.Fatalf("IssueAccessToken returned error: %v", err)
	}

	token, err := jwt.Parse(signed, func(tok *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("issued token failed verification: %v", err)
	}

	claims := token.Claims.(jwt.MapClaims)
	if claims["email"] != raw {
		t.Fatalf("expected raw email claim %q, got %v", raw, claims["email"])
	}
}

func TestIssueAccessTokenRejectsWrongKey(t *testing.T) {
	signed, err := IssueAccessToken("alice@x.com", "secret-a", time.Hour)
	if err != nil {
		t.Fatalf("IssueAccessToken returned error: %v", err)
	}

	_, err = jwt.Parse(signed, func(tok *jwt.Token) (interface{}, error) {
		return []byte("secret-b"), nil
	})
	if err == nil {
		t.Fatal("expected verification failure with a different key")
	}
}
