package auth

import (
	"context"
	"encoding/base64"
	"fmt"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// FirebaseVerifier validates Firebase ID tokens using the Admin SDK.
type FirebaseVerifier struct {
	client *fbauth.Client
}

// NewFirebaseVerifier builds a verifier from a base64-encoded
// service-account credential (the FIREBASE_CREDENTIALS environment value).
func NewFirebaseVerifier(ctx context.Context, credentialsB64 string) (*FirebaseVerifier, error) {
	raw, err := base64.StdEncoding.DecodeString(credentialsB64)
	if err != nil {
		return nil, fmt.Errorf("decode firebase credentials: %w", err)
	}

	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsJSON(raw))
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("init firebase auth client: %w", err)
	}

	return &FirebaseVerifier{client: client}, nil
}

func (v *FirebaseVerifier) Verify(ctx context.Context, token string) (string, error) {
	decoded, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	email, _ := decoded.Claims["email"].(string)
	if email == "" {
		return "", ErrNoEmailClaim
	}
	return email, nil
}
