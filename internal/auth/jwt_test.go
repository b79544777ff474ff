package auth

import "testing"

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken(7, 3, true)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ParseAndValidate(token)
	if err != nil {
		t.Fatalf("ParseAndValidate: %v", err)
	}
	if claims.UserID != 7 || claims.TenantID != 3 || !claims.IsAdmin {
		t.Errorf("claims = %+v", claims)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	if _, err := ParseAndValidate("not.a.token"); err == nil {
		t.Error("expected error for malformed token")
	}
}
