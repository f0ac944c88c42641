package identity

import (
	"context"
	"encoding/json"
	"fmt"

	"storefront-backend/config"
	"storefront-backend/pkg/errs"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

type serviceAccount struct {
	Type                    string `json:"type"`
	ProjectID               string `json:"project_id"`
	PrivateKeyID            string `json:"private_key_id"`
	PrivateKey              string `json:"private_key"`
	ClientEmail             string `json:"client_email"`
	ClientID                string `json:"client_id"`
	AuthURI                 string `json:"auth_uri"`
	TokenURI                string `json:"token_uri"`
	AuthProviderX509CertURL string `json:"auth_provider_x509_cert_url"`
	ClientX509CertURL       string `json:"client_x509_cert_url"`
}

type FirebaseIdentityProvider struct {
	authClient *auth.Client
}

// CreateFirebaseIdentityProvider builds the auth client once at startup from
// the env-supplied credentials bundle.
func CreateFirebaseIdentityProvider(ctx context.Context, config *config.Config) (*FirebaseIdentityProvider, error) {
	credentials, err := json.Marshal(serviceAccount{
		Type:                    config.FirebaseConfig.Type,
		ProjectID:               config.FirebaseConfig.ProjectID,
		PrivateKeyID:            config.FirebaseConfig.PrivateKeyID,
		PrivateKey:              config.FirebaseConfig.PrivateKey,
		ClientEmail:             config.FirebaseConfig.ClientEmail,
		ClientID:                config.FirebaseConfig.ClientID,
		AuthURI:                 config.FirebaseConfig.AuthURI,
		TokenURI:                config.FirebaseConfig.TokenURI,
		AuthProviderX509CertURL: config.FirebaseConfig.AuthProviderCertURL,
		ClientX509CertURL:       config.FirebaseConfig.ClientCertURL,
	})
	if err != nil {
		return nil, fmt.Errorf("marshalling firebase credentials: %w", err)
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{
		ProjectID: config.FirebaseConfig.ProjectID,
	}, option.WithCredentialsJSON(credentials))
	if err != nil {
		return nil, fmt.Errorf("initializing firebase app: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("initializing firebase auth client: %w", err)
	}

	return &FirebaseIdentityProvider{authClient: authClient}, nil
}

func (p *FirebaseIdentityProvider) GetEmailVerified(ctx context.Context, uid string) (bool, error) {
	record, err := p.authClient.GetUser(ctx, uid)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetEmailVerified").Msg("")
		if auth.IsUserNotFound(err) {
			return false, fmt.Errorf("%w: %s", errs.ErrUserNotFound, uid)
		}

		return false, fmt.Errorf("%w: %v", errs.ErrIdentity, err)
	}

	return record.EmailVerified, nil
}
