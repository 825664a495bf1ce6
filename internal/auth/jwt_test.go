package auth

import (
	"os"
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateAndVerifyJWT(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret")
	if err := InitJWTSecret(); err != nil {
		t.Fatalf("init secret: %v", err)
	}

	tokenString, err := GenerateJWT(42, "gopher")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	token, err := VerifyJWT(tokenString)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("expected map claims")
	}
	if id, _ := claims["user_id"].(float64); uint(id) != 42 {
		t.Fatalf("expected user_id 42, got %v", claims["user_id"])
	}
	if claims["username"] != "gopher" {
		t.Fatalf("expected username gopher, got %v", claims["username"])
	}
}

func TestGenerateJWTTokensAreUnique(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret")
	if err := InitJWTSecret(); err != nil {
		t.Fatalf("init secret: %v", err)
	}

	first, err := GenerateJWT(42, "gopher")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	second, err := GenerateJWT(42, "gopher")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	// Identical claims in the same second must still yield distinct tokens;
	// the sessions table keys on the token string.
	if first == second {
		t.Fatal("expected distinct tokens for back-to-back logins")
	}
}

func TestVerifyJWTRejectsWrongSecret(t *testing.T) {
	os.Setenv("JWT_SECRET", "secret-a")
	if err := InitJWTSecret(); err != nil {
		t.Fatalf("init secret: %v", err)
	}
	tokenString, err := GenerateJWT(1, "alice")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	os.Setenv("JWT_SECRET", "secret-b")
	if err := InitJWTSecret(); err != nil {
		t.Fatalf("init secret: %v", err)
	}
	if _, err := VerifyJWT(tokenString); err == nil {
		t.Fatal("expected verification to fail with a different secret")
	}
}
