// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// requiredConfig returns the smallest config that passes validation once
// defaults are applied.
func requiredConfig() *StructuredConfig {
	return &StructuredConfig{
		App:     App{TokenSignKey: "sign-key"},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/microblog"}},
	}
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that the defaults alone are not enough:
// the sign key and the DSN have no default.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_AppliesDefaults verifies that unset fields receive defaults.
func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, requiredConfig())

	cfg, err := b.build()
	require.NoError(t, err)

	defaults := Defaults()
	assert.Equal(t, "sign-key", cfg.App.TokenSignKey)
	assert.Equal(t, defaults.App.TokenIssuer, cfg.App.TokenIssuer)
	assert.Equal(t, defaults.App.TokenDuration, cfg.App.TokenDuration)
	assert.Equal(t, defaults.App.BcryptCost, cfg.App.BcryptCost)
	assert.Equal(t, "postgres", cfg.Storage.DB.Driver)
	assert.Equal(t, defaults.Server.HTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, defaults.Mail.Subject, cfg.Mail.Subject)
	assert.Equal(t, defaults.Workers.HealthCheckInterval, cfg.Workers.HealthCheckInterval)
	// left empty so the build version can fill it in
	assert.Empty(t, cfg.App.Version)
}

// TestBuild_LaterConfigsOverride verifies that later configs win over
// earlier ones for non-zero fields and keep earlier values otherwise.
func TestBuild_LaterConfigsOverride(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		requiredConfig(),
		&StructuredConfig{App: App{Version: "1.0.0", TokenIssuer: "first"}},
		&StructuredConfig{App: App{TokenIssuer: "second"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "second", cfg.App.TokenIssuer)
	assert.Equal(t, "sign-key", cfg.App.TokenSignKey)
}

// TestBuild_ValidationErrors verifies that each invalid group surfaces its
// own sentinel.
func TestBuild_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:    "unsupported driver",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.Driver = "mysql" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "malformed base url",
			mutate:  func(cfg *StructuredConfig) { cfg.App.BaseURL = "not a url" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "bcrypt cost too high",
			mutate:  func(cfg *StructuredConfig) { cfg.App.BcryptCost = 40 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "malformed http address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "no-port" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "malformed sender",
			mutate:  func(cfg *StructuredConfig) { cfg.Mail.From = "nobody" },
			wantErr: ErrInvalidMailConfigs,
		},
		{
			name:    "unknown tls policy",
			mutate:  func(cfg *StructuredConfig) { cfg.Mail.TLSPolicy = "sometimes" },
			wantErr: ErrInvalidMailConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := requiredConfig()
			tt.mutate(cfg)

			b := newConfigBuilder()
			b.configs = append(b.configs, cfg)

			_, err := b.build()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_VERSION":      "env-version",
		"APP_TOKEN_ISSUER": "env-issuer",
	})

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "env-issuer", b.configs[0].App.TokenIssuer)
}

// TestWithEnv_SetsErrorOnBadValue verifies that a malformed variable is
// recorded on the builder.
func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	setEnvVars(t, map[string]string{"SERVER_REQUEST_TIMEOUT": "eventually"})

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

// TestWithFlags_ReadsArgs verifies that flags are parsed from the given args.
func TestWithFlags_ReadsArgs(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags([]string{"-token-issuer", "flag-issuer"}))

	require.Len(t, b.configs, 1)
	assert.Equal(t, "flag-issuer", b.configs[0].App.TokenIssuer)
}

// TestWithFlags_SetsErrorOnBadArgs verifies that a flag parse failure is
// recorded on the builder.
func TestWithFlags_SetsErrorOnBadArgs(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"-token-duration", "never"})

	assert.Error(t, b.err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoOp_WhenNoPathSet verifies that withJSON does nothing when
// no config has a JSONFilePath.
func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	assert.Same(t, b, b.withJSON())

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithJSON_PrependsConfig verifies that the JSON file is loaded with the
// lowest priority.
func TestWithJSON_PrependsConfig(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "json-version"
	payload.App.TokenIssuer = "json-issuer"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: path,
		App:          App{TokenIssuer: "env-issuer"},
	})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-version", b.configs[0].App.Version)

	b.configs = append(b.configs, requiredConfig())
	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "json-version", cfg.App.Version)
	assert.Equal(t, "env-issuer", cfg.App.TokenIssuer)
}

// TestWithJSON_DurationsFromFile verifies that durations in the file survive
// the merge.
func TestWithJSON_DurationsFromFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Server.RequestTimeout = Duration(5 * time.Second)
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, requiredConfig(), &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
}

// TestWithJSON_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_UsesLastPath verifies that when multiple configs have a
// JSONFilePath, the last non-empty one wins.
func TestWithJSON_UsesLastPath(t *testing.T) {
	first := StructuredJSONConfig{}
	first.App.Version = "first"
	last := StructuredJSONConfig{}
	last.App.Version = "last-wins"

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, first)},
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, last)},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last-wins", b.configs[0].App.Version)
}

// ── ConfirmationBaseURL ───────────────────────────────────────────────────────

func TestConfirmationBaseURL(t *testing.T) {
	cfg := &StructuredConfig{Server: Server{HTTPAddress: "localhost:8080"}}
	assert.Equal(t, "http://localhost:8080", cfg.ConfirmationBaseURL())

	cfg.App.BaseURL = "https://blog.example.com"
	assert.Equal(t, "https://blog.example.com", cfg.ConfirmationBaseURL())
}
