// Package config provides credential lookup for the outbound collaborators.
// Credentials are read from the environment at call time; there is no caching
// and no hot reload. A missing credential is fatal only for the collaborator
// that needs it.
package config

import (
	"fmt"
	"os"
)

// Environment variable names for the three outbound collaborator credentials
const (
	// EnvJinaAPIKey is the bearer credential for the web-content scraping service
	EnvJinaAPIKey = "JINA_API_KEY"
	// EnvCrustdataAPIKey is the token credential for the profile-enrichment service
	EnvCrustdataAPIKey = "CRUSTDATA_API_KEY"
	// EnvGeminiAPIKey is the API key for the language-model completion service
	EnvGeminiAPIKey = "GEMINI_API_KEY"
)

// MissingCredentialError indicates that the credential for an outbound
// collaborator is not configured. This is operator-fixable, not user-fixable.
type MissingCredentialError struct {
	EnvVar string
}

func (e *MissingCredentialError) Error() string {
	return fmt.Sprintf("%s is not configured", e.EnvVar)
}

// Credential reads a credential from the environment. It returns a
// MissingCredentialError if the variable is unset or empty.
func Credential(envVar string) (string, error) {
	value := os.Getenv(envVar)
	if value == "" {
		return "", &MissingCredentialError{EnvVar: envVar}
	}
	return value, nil
}

// JinaAPIKey returns the scraping service credential.
func JinaAPIKey() (string, error) {
	return Credential(EnvJinaAPIKey)
}

// CrustdataAPIKey returns the enrichment service credential.
func CrustdataAPIKey() (string, error) {
	return Credential(EnvCrustdataAPIKey)
}

// GeminiAPIKey returns the completion service credential.
func GeminiAPIKey() (string, error) {
	return Credential(EnvGeminiAPIKey)
}
