package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/Mohsinsiddi/w3deploy/internal/wallet"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Secrets are the values read from the environment at load time. Neither is
// validated: an empty value flows on into endpoint URLs and credentials.
type Secrets struct {
	ProjectID string
	SecretKey string
}

// String never includes the secret key.
func (s Secrets) String() string {
	return fmt.Sprintf("project_id=%s secret_key=%s", s.ProjectID, wallet.Fingerprint(s.SecretKey))
}

// LoadDotEnv loads KEY=value pairs from path into the process environment.
// Variables already set win. A missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		path = DefaultEnvFile
	}
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("loading %s: %w", path, err)
}

// NewViper returns a viper instance bound to the secret environment variables.
func NewViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	_ = v.BindEnv("project_id", EnvProjectID)
	_ = v.BindEnv("secret_key", EnvSecretKey)
	return v
}

// LoadSecrets reads the project id and secret key. It never fails. The
// project id is written to log; an unset id is logged as "undefined".
func LoadSecrets(v *viper.Viper, log *slog.Logger) Secrets {
	if v == nil {
		v = NewViper()
	}
	if log == nil {
		log = slog.Default()
	}

	s := Secrets{
		ProjectID: v.GetString("project_id"),
		SecretKey: v.GetString("secret_key"),
	}

	projectID := s.ProjectID
	if projectID == "" {
		projectID = undefinedMarker
	}
	log.Info("loaded deployment secrets",
		slog.String("project_id", projectID),
		slog.String("secret", wallet.Fingerprint(s.SecretKey)),
	)
	return s
}
