package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AppHost  string
	HTTPPort string
	AppEnv   string
	LogLevel string

	// TemplateDir and AssetDir locate the page templates and static
	// assets relative to the working directory.
	TemplateDir string
	AssetDir    string

	Zendesk struct {
		URL   string
		User  string
		Token string

		// GroupID routes created tickets to the support team.
		GroupID int

		// Fake short-circuits ticket transport: payloads are built and
		// logged but never sent. For local runs and tests.
		Fake bool
	}
}

func Load() (*Config, error) {
	_ = godotenv.Load(".env")
	_ = godotenv.Load("../.env")

	cfg := &Config{
		AppHost:     getEnv("APP_HOST", "0.0.0.0"),
		HTTPPort:    firstEnv("APP_PORT", "HTTP_PORT", "8080"),
		AppEnv:      getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		TemplateDir: getEnv("TEMPLATE_DIR", "templates"),
		AssetDir:    getEnv("ASSET_DIR", "public"),
	}
	cfg.Zendesk.URL = getEnv("ZENDESK_URL", "")
	cfg.Zendesk.User = getEnv("ZENDESK_USER", "")
	cfg.Zendesk.Token = getEnv("ZENDESK_TOKEN", "")
	cfg.Zendesk.Fake = getEnv("FAKE_ZENDESK", "") != ""

	groupID, err := strconv.Atoi(getEnv("ZENDESK_GROUP_ID", "0"))
	if err != nil {
		return nil, errors.New("config: ZENDESK_GROUP_ID must be an integer")
	}
	cfg.Zendesk.GroupID = groupID

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Zendesk.Fake {
		return nil
	}
	if c.Zendesk.URL == "" || c.Zendesk.User == "" || c.Zendesk.Token == "" {
		return errors.New("config: ZENDESK_URL, ZENDESK_USER and ZENDESK_TOKEN are required unless FAKE_ZENDESK is set")
	}
	if c.Zendesk.GroupID <= 0 {
		return errors.New("config: ZENDESK_GROUP_ID is required unless FAKE_ZENDESK is set")
	}
	return nil
}

func (c *Config) Addr() string {
	return c.AppHost + ":" + c.HTTPPort
}

func firstEnv(keysAndDef ...string) string {
	if len(keysAndDef) == 0 {
		return ""
	}
	def := keysAndDef[len(keysAndDef)-1]
	for _, k := range keysAndDef[:len(keysAndDef)-1] {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return def
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
