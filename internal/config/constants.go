package config

import "time"

// Environment variables holding the deployment secrets.
const (
	EnvProjectID = "PROJECT_ID"
	EnvSecretKey = "SECRET_KEY"
)

// DefaultEnvFile is loaded before the environment is read, if present.
const DefaultEnvFile = ".env"

// SolcVersion is the pinned contract compiler version.
const SolcVersion = "0.5.12"

// undefinedMarker is logged in place of an unset project id.
const undefinedMarker = "undefined"

// Timeout constants used by cmd.
const (
	ConnectTimeout = 15 * time.Second // provider construction + health check
)
