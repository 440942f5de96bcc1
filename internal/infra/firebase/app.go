// Package firebase builds the Firebase app shared by Firestore, Auth and Messaging.
package firebase

import (
	"context"
	"sync"

	"canteen/config"
	"canteen/internal/errors"

	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// AppProvider initializes the Firebase app on first use, so deployments that use
// none of the Firebase-backed adapters never need credentials.
type AppProvider struct {
	ctx  context.Context
	cfg  *config.FirebaseConfig
	once sync.Once
	app  *firebase.App
	err  error
}

// NewAppProvider creates an AppProvider from configuration.
func NewAppProvider(ctx context.Context, cfg *config.Config) *AppProvider {
	fbCfg := cfg.Firebase
	if fbCfg == nil {
		fbCfg = &config.FirebaseConfig{}
	}

	return &AppProvider{ctx: ctx, cfg: fbCfg}
}

// App returns the Firebase app, creating it on the first call.
func (p *AppProvider) App() (*firebase.App, error) {
	p.once.Do(func() {
		var opts []option.ClientOption
		if p.cfg.CredentialsPath != "" {
			opts = append(opts, option.WithCredentialsFile(p.cfg.CredentialsPath))
		}

		var appCfg *firebase.Config
		if p.cfg.ProjectID != "" {
			appCfg = &firebase.Config{ProjectID: p.cfg.ProjectID}
		}

		p.app, p.err = firebase.NewApp(p.ctx, appCfg, opts...)
		if p.err != nil {
			p.err = errors.Wrap(p.err, "failed to initialize Firebase app")
		}
	})

	return p.app, p.err
}
