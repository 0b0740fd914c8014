// Package config loads application configuration from the base directory.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strconv"

	"github.com/tailscale/hujson"
)

// Config holds application configuration.
type Config struct {
	// DebounceMS is the trailing window applied to filter recomputation,
	// in milliseconds.
	DebounceMS int `json:"debounce_ms,omitempty"`

	// ResultCap is the maximum number of postings a single listing
	// response carries.
	ResultCap int `json:"result_cap,omitempty"`

	// SuggestCap is the maximum number of university suggestions returned
	// by a single match query.
	SuggestCap int `json:"suggest_cap,omitempty"`

	// MaxUserPosts caps the number of persisted user-created postings.
	// Oldest entries are dropped past the cap.
	MaxUserPosts int `json:"max_user_posts,omitempty"`

	// Bind is the HTTP listen address.
	Bind string `json:"bind,omitempty"`

	// Port is the HTTP listen port.
	Port int `json:"port,omitempty"`

	// TelegramBotToken enables the new-posting notifier when set together
	// with TelegramChatID.
	TelegramBotToken string `json:"telegram_bot_token,omitempty"`

	// TelegramChatID is the chat the notifier posts to.
	TelegramChatID int64 `json:"telegram_chat_id,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		DebounceMS:   90,
		ResultCap:    50,
		SuggestCap:   12,
		MaxUserPosts: 50,
		Bind:         "127.0.0.1",
		Port:         8787,
	}
}

// Load loads configuration from baseDir/config.json, applies defaults,
// then environment overrides. Returns defaults if the file doesn't exist.
// The baseDir parameter allows tests to use t.TempDir().
// The file may carry comments and trailing commas (JWCC).
func Load(baseDir string) (*Config, error) {
	cfg, err := loadFileRaw(filepath.Join(baseDir, "config.json"))
	if err != nil {
		return nil, err
	}
	merged := Merge(DefaultConfig(), cfg)
	applyEnv(merged)
	return merged, nil
}

// loadFileRaw loads configuration from a specific file path.
// Returns zero-valued config if the file doesn't exist (not defaults).
func loadFileRaw(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}

	std, err := hujson.Standardize(data)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := json.Unmarshal(std, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Merge combines base and overlay configs. Overlay values take precedence
// when non-zero.
func Merge(base, overlay *Config) *Config {
	result := &Config{}

	result.DebounceMS = overlay.DebounceMS
	if result.DebounceMS == 0 {
		result.DebounceMS = base.DebounceMS
	}

	result.ResultCap = overlay.ResultCap
	if result.ResultCap == 0 {
		result.ResultCap = base.ResultCap
	}

	result.SuggestCap = overlay.SuggestCap
	if result.SuggestCap == 0 {
		result.SuggestCap = base.SuggestCap
	}

	result.MaxUserPosts = overlay.MaxUserPosts
	if result.MaxUserPosts == 0 {
		result.MaxUserPosts = base.MaxUserPosts
	}

	result.Bind = overlay.Bind
	if result.Bind == "" {
		result.Bind = base.Bind
	}

	result.Port = overlay.Port
	if result.Port == 0 {
		result.Port = base.Port
	}

	result.TelegramBotToken = overlay.TelegramBotToken
	if result.TelegramBotToken == "" {
		result.TelegramBotToken = base.TelegramBotToken
	}

	result.TelegramChatID = overlay.TelegramChatID
	if result.TelegramChatID == 0 {
		result.TelegramChatID = base.TelegramChatID
	}

	return result
}

// applyEnv overrides config fields from the environment.
func applyEnv(cfg *Config) {
	if v := os.Getenv("ENTRYPOINT_BIND"); v != "" {
		cfg.Bind = v
	}
	if v := os.Getenv("ENTRYPOINT_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 {
			cfg.Port = p
		}
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.TelegramBotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.TelegramChatID = id
		}
	}
}

// BaseDir resolves the application base directory. ENTRYPOINT_BASE_DIR
// wins when set; otherwise ~/.entrypoint.
func BaseDir() (string, error) {
	if v := os.Getenv("ENTRYPOINT_BASE_DIR"); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".entrypoint"), nil
}
