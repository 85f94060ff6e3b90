package config

import "os"

// APIKeySource represents where a feed source's key came from.
type APIKeySource string

const (
	KeySourceEnv  APIKeySource = "env"
	KeySourceNone APIKeySource = "none"
)

// KeyStatus represents the status of one feed source's optional API key.
type KeyStatus struct {
	Source string       `json:"source"`
	EnvVar string       `json:"env_var"`
	KeySrc APIKeySource `json:"key_source"`
	IsSet  bool         `json:"is_set"`
	Masked string       `json:"masked,omitempty"` // e.g., "sk-...abc"
}

// CheckFeedSourceKeys reports, for every configured feed source that names
// an APIKeyEnv, whether that environment variable is currently set. Most
// public RSS/Atom feeds need no key at all; sources with an empty
// APIKeyEnv are omitted since there is nothing to report on.
func CheckFeedSourceKeys(cfg *Config) []KeyStatus {
	var statuses []KeyStatus
	for _, src := range cfg.Feed.Sources {
		if src.APIKeyEnv == "" {
			continue
		}
		statuses = append(statuses, checkKey(src.Name, src.APIKeyEnv))
	}
	return statuses
}

func checkKey(source, envVar string) KeyStatus {
	value := os.Getenv(envVar)
	status := KeyStatus{Source: source, EnvVar: envVar, IsSet: value != ""}
	if value != "" {
		status.KeySrc = KeySourceEnv
		status.Masked = maskKey(value)
	} else {
		status.KeySrc = KeySourceNone
	}
	return status
}

// maskKey masks an API key for display, showing only first 3 and last 3 chars.
func maskKey(key string) string {
	if len(key) <= 8 {
		return "***"
	}
	return key[:3] + "..." + key[len(key)-3:]
}
