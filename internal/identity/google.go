package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
)

const googleIssuer = "https://accounts.google.com"

var ErrUnverifiedEmail = errors.New("google account email is not verified")

// Verifier validates a third-party ID token and returns the verified email.
type Verifier interface {
	VerifyIDToken(ctx context.Context, rawToken string) (email string, err error)
}

// GoogleVerifier checks Google ID tokens against Google's published keys
// and the configured OAuth client ID.
type GoogleVerifier struct {
	verifier *oidc.IDTokenVerifier
}

func NewGoogleVerifier(ctx context.Context, clientID string) (*GoogleVerifier, error) {
	provider, err := oidc.NewProvider(ctx, googleIssuer)
	if err != nil {
		return nil, fmt.Errorf("google oidc discovery: %w", err)
	}

	return &GoogleVerifier{
		verifier: provider.Verifier(&oidc.Config{ClientID: clientID}),
	}, nil
}

func (g *GoogleVerifier) VerifyIDToken(ctx context.Context, rawToken string) (string, error) {
	idToken, err := g.verifier.Verify(ctx, rawToken)
	if err != nil {
		return "", fmt.Errorf("verify google id token: %w", err)
	}

	var claims struct {
		Email         string `json:"email"`
		EmailVerified bool   `json:"email_verified"`
	}
	if err := idToken.Claims(&claims); err != nil {
		return "", fmt.Errorf("decode google token claims: %w", err)
	}
	if claims.Email == "" || !claims.EmailVerified {
		return "", ErrUnverifiedEmail
	}

	return claims.Email, nil
}
