package app

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"vendorhub/internal/api"
	"vendorhub/internal/notify"
	authsvc "vendorhub/internal/services/auth"
	recoverysvc "vendorhub/internal/services/recovery"
	registrationsvc "vendorhub/internal/services/registration"
	"vendorhub/internal/store"
)

// Wire bundles all stores, services, and clients for the CLI.
type Wire struct {
	Registration *registrationsvc.Service
	Auth         *authsvc.Service
	Recovery     *recoverysvc.Service
	API          *api.Client
	Prefs        *store.PrefStore
	Drafts       *store.DraftStore
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	home := cfg.Home
	if home == "" {
		dir, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		home = filepath.Join(dir, ".vendorhub")
	}
	if err := os.MkdirAll(home, 0o700); err != nil {
		return nil, err
	}

	log := logrus.WithField("component", "vendorhub")

	prefStore := store.NewPrefStore(home)
	draftStore := store.NewDraftStore(home)

	client := api.New(cfg.BaseURL, &http.Client{Timeout: cfg.Timeout})

	// The API client backs both capabilities: registration submission
	// and credential checks.
	return &Wire{
		Registration: registrationsvc.New(client, log.WithField("service", "registration")),
		Auth:         authsvc.New(client, prefStore, log.WithField("service", "auth")),
		Recovery:     recoverysvc.New(cfg.AdminEmail, notify.NewMailto(), log.WithField("service", "recovery")),
		API:          client,
		Prefs:        prefStore,
		Drafts:       draftStore,
	}, nil
}
