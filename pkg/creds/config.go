package creds

import (
	"log"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config supplies everything the CLI needs before a source can be built:
// where credentials live and which databases to talk to.
type Config interface {
	BasePath() string
	DatabaseID() string
	CourseDatabaseID() string
	ClientID() string
	ClientSecret() string
	// IntegrationToken is a direct internal-integration token; when set it
	// bypasses the OAuth flow entirely.
	IntegrationToken() string
	Timezone() string
	Later() bool
}

// LoadConfig reads .notify.yaml from the working directory (or the directory
// named by NOTIFY_CONFIG_PATH), with NOTIFY_* environment variables taking
// precedence over file values.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.notify.db")
	viper.SetConfigName(".notify") // .yaml is implicit
	viper.SetEnvPrefix("NOTIFY")
	viper.AutomaticEnv()

	if override := os.Getenv("NOTIFY_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("error reading config file: %v", err)
			return nil, err
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}

	return &fileConfig{
		Path:        path,
		Database:    viper.GetString("database_id"),
		CourseDB:    viper.GetString("course_database_id"),
		OAuthID:     viper.GetString("client_id"),
		OAuthSecret: viper.GetString("client_secret"),
		Token:       viper.GetString("token"),
		TZ:          viper.GetString("timezone"),
		ShowLater:   viper.GetBool("later"),
	}, nil
}

type fileConfig struct {
	Path        string `json:"path"`
	Database    string `json:"database_id"`
	CourseDB    string `json:"course_database_id"`
	OAuthID     string `json:"client_id"`
	OAuthSecret string `json:"client_secret"`
	Token       string `json:"token"`
	TZ          string `json:"timezone"`
	ShowLater   bool   `json:"later"`
}

func (f *fileConfig) BasePath() string         { return f.Path }
func (f *fileConfig) DatabaseID() string       { return f.Database }
func (f *fileConfig) CourseDatabaseID() string { return f.CourseDB }
func (f *fileConfig) ClientID() string         { return f.OAuthID }
func (f *fileConfig) ClientSecret() string     { return f.OAuthSecret }
func (f *fileConfig) IntegrationToken() string { return f.Token }
func (f *fileConfig) Timezone() string         { return f.TZ }
func (f *fileConfig) Later() bool              { return f.ShowLater }
