// Package creds owns credential persistence and the Notion OAuth flow. The
// rest of the codebase never reads or writes tokens directly; it asks a
// Store.
package creds

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/peterbourgon/diskv/v3"
	"golang.org/x/oauth2"
)

// Well-known store keys.
const (
	KeyToken     = "token"
	KeyWorkspace = "workspace"
)

// ErrNotFound is returned by Get for a key with no stored value.
var ErrNotFound = errors.New("creds: not found")

// Store is the credential store contract: explicit get/set/clear with an
// explicit lifecycle, never a process-global session map.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Clear(key string) error
}

// Open creates a diskv-backed Store rooted under the configured base path.
func Open(cfg Config) (Store, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	return &store{d: diskv.New(diskv.Options{
		BasePath:     cfg.BasePath() + "/credentials",
		CacheSizeMax: 64 * 1024,
	})}, nil
}

type store struct {
	d *diskv.Diskv
}

func (s *store) Get(key string) ([]byte, error) {
	val, err := s.d.Read(key)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return val, nil
}

func (s *store) Set(key string, value []byte) error {
	return s.d.Write(key, value)
}

func (s *store) Clear(key string) error {
	if err := s.d.Erase(key); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// SaveToken persists an OAuth token.
func SaveToken(s Store, tok *oauth2.Token) error {
	data, err := json.Marshal(tok)
	if err != nil {
		return err
	}
	return s.Set(KeyToken, data)
}

// Token loads the stored OAuth token. ErrNotFound means the user has not
// authenticated yet.
func Token(s Store) (*oauth2.Token, error) {
	data, err := s.Get(KeyToken)
	if err != nil {
		return nil, err
	}
	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, err
	}
	return &tok, nil
}
