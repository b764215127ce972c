package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/yigit/academics/internal/pkg/apperrors"
)

func newTestJWTService() *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "academics.test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	s := newTestJWTService()

	token, expiresIn, err := s.GenerateToken(42)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if expiresIn != 3600 {
		t.Fatalf("expected 3600s lifetime, got %d", expiresIn)
	}

	claims, err := s.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.AcademicID != 42 || claims.Subject != "42" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestValidateTokenRejects(t *testing.T) {
	s := newTestJWTService()
	token, _, err := s.GenerateToken(7)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	other := NewJWTService(JWTConfig{SecretKey: "other", AccessTokenExp: time.Hour, TokenIssuer: "academics.test"})
	if _, err := other.ValidateToken(token); !errors.Is(err, apperrors.ErrTokenInvalid) {
		t.Fatalf("expected wrong secret to fail with ErrTokenInvalid, got %v", err)
	}

	wrongIssuer := NewJWTService(JWTConfig{SecretKey: "test-secret", AccessTokenExp: time.Hour, TokenIssuer: "elsewhere"})
	if _, err := wrongIssuer.ValidateToken(token); !errors.Is(err, apperrors.ErrTokenInvalid) {
		t.Fatalf("expected wrong issuer to fail with ErrTokenInvalid, got %v", err)
	}

	if _, err := s.ValidateToken(""); !errors.Is(err, apperrors.ErrTokenInvalid) {
		t.Fatalf("expected empty token to fail, got %v", err)
	}

	s.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	if _, err := s.ValidateToken(token); !errors.Is(err, apperrors.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestExtractBearerToken(t *testing.T) {
	cases := map[string]struct {
		header  string
		want    string
		wantErr bool
	}{
		"bearer":       {header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		"padded":       {header: "  Bearer abc  ", want: "abc"},
		"no prefix":    {header: "abc.def.ghi", wantErr: true},
		"empty token":  {header: "Bearer ", wantErr: true},
		"empty header": {header: "", wantErr: true},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := ExtractBearerToken(tc.header)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got token %q", got)
				}
				return
			}
			if err != nil || got != tc.want {
				t.Fatalf("expected %q, got %q (%v)", tc.want, got, err)
			}
		})
	}
}
