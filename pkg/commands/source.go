package commands

import (
	"errors"
	"log"
	"time"

	"tableflip.dev/notify/pkg/creds"
	"tableflip.dev/notify/pkg/notion"
)

// newSource builds the Notion client from config and stored credentials. A
// direct integration token in the config wins over the OAuth token store.
func newSource() (*notion.Client, creds.Config, error) {
	cfg, err := creds.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	if cfg.DatabaseID() == "" {
		return nil, nil, errors.New("database_id must be set in .notify.yaml (or NOTIFY_DATABASE_ID)")
	}

	token := cfg.IntegrationToken()
	if token == "" {
		store, err := creds.Open(cfg)
		if err != nil {
			return nil, nil, err
		}
		tok, err := creds.Token(store)
		if err != nil {
			if errors.Is(err, creds.ErrNotFound) {
				return nil, nil, errors.New("not connected to Notion, run `notify auth` first")
			}
			return nil, nil, err
		}
		token = tok.AccessToken
	}

	client := notion.New(notion.Config{
		Token:            token,
		DatabaseID:       cfg.DatabaseID(),
		CourseDatabaseID: cfg.CourseDatabaseID(),
	})
	return client, cfg, nil
}

// location resolves the configured IANA timezone; nil means the system
// timezone.
func location(cfg creds.Config) *time.Location {
	tz := cfg.Timezone()
	if tz == "" {
		return nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Printf("unknown timezone %q, using system timezone: %v", tz, err)
		return nil
	}
	return loc
}
