package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/Veraticus/parceiro/internal/common"
	"github.com/Veraticus/parceiro/internal/report"
	"github.com/spf13/viper"
)

// Export targets.
const (
	ExportXLSX   = "xlsx"
	ExportSheets = "sheets"
)

// Config is the resolved application configuration.
type Config struct {
	DatabasePath    string
	PartnerID       string
	PartnerName     string
	ReferralBaseURL string
	Theme           string
	ExportTarget    string
	ExportDir       string
	LogLevel        string
	LogFormat       string
	LogFile         string
	Sheets          report.SheetsConfig
}

// ReferralLink returns the partner's referral URL.
func (c Config) ReferralLink() string {
	u, err := url.Parse(c.ReferralBaseURL)
	if err != nil {
		return c.ReferralBaseURL + "?ref=" + url.QueryEscape(c.PartnerID)
	}
	q := u.Query()
	q.Set("ref", c.PartnerID)
	u.RawQuery = q.Encode()
	return u.String()
}

// SetDefaults registers every default value on v.
func SetDefaults(v *viper.Viper) {
	home, _ := os.UserHomeDir()

	v.SetDefault("database.path", filepath.Join(DataDir(), "parceiro.db"))
	v.SetDefault("partner.id", "GS123456")
	v.SetDefault("partner.name", "João Silva")
	v.SetDefault("referral.base_url", "https://seuagente.ai/parceria")
	v.SetDefault("theme", "default")
	v.SetDefault("export.target", ExportXLSX)
	v.SetDefault("export.dir", filepath.Join(home, "Downloads"))
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file", filepath.Join(StateDir(), "parceiro.log"))
	v.SetDefault("sheets.spreadsheet_name", report.DefaultSheetsConfig().SpreadsheetName)
}

// Load reads and validates the configuration held by v.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		DatabasePath:    ExpandPath(v.GetString("database.path")),
		PartnerID:       strings.TrimSpace(v.GetString("partner.id")),
		PartnerName:     strings.TrimSpace(v.GetString("partner.name")),
		ReferralBaseURL: strings.TrimSpace(v.GetString("referral.base_url")),
		Theme:           v.GetString("theme"),
		ExportTarget:    strings.ToLower(v.GetString("export.target")),
		ExportDir:       ExpandPath(v.GetString("export.dir")),
		LogLevel:        v.GetString("logging.level"),
		LogFormat:       v.GetString("logging.format"),
		LogFile:         ExpandPath(v.GetString("logging.file")),
		Sheets:          LoadSheetsConfig(v),
	}

	if cfg.DatabasePath == "" {
		return Config{}, fmt.Errorf("%w: database.path", common.ErrMissingConfig)
	}
	if cfg.PartnerID == "" {
		return Config{}, fmt.Errorf("%w: partner.id", common.ErrMissingConfig)
	}
	if _, err := url.ParseRequestURI(cfg.ReferralBaseURL); err != nil {
		return Config{}, fmt.Errorf("%w: referral.base_url %q: %w", common.ErrInvalidConfig, cfg.ReferralBaseURL, err)
	}

	switch cfg.ExportTarget {
	case ExportXLSX:
		if cfg.ExportDir == "" {
			return Config{}, fmt.Errorf("%w: export.dir", common.ErrMissingConfig)
		}
	case ExportSheets:
		if err := cfg.Sheets.Validate(); err != nil {
			return Config{}, err
		}
	default:
		return Config{}, fmt.Errorf("%w: export.target must be %q or %q, got %q",
			common.ErrInvalidConfig, ExportXLSX, ExportSheets, cfg.ExportTarget)
	}

	return cfg, nil
}

// LoadSheetsConfig loads Google Sheets configuration from viper and
// environment variables. Viper keys win over GOOGLE_SHEETS_* variables.
func LoadSheetsConfig(v *viper.Viper) report.SheetsConfig {
	cfg := report.DefaultSheetsConfig()

	first := func(key, env string) string {
		if s := v.GetString(key); s != "" {
			return s
		}
		return os.Getenv(env)
	}

	cfg.ServiceAccountPath = ExpandPath(first("sheets.service_account_path", "GOOGLE_SHEETS_SERVICE_ACCOUNT_PATH"))
	cfg.ClientID = first("sheets.client_id", "GOOGLE_SHEETS_CLIENT_ID")
	cfg.ClientSecret = first("sheets.client_secret", "GOOGLE_SHEETS_CLIENT_SECRET")
	cfg.RefreshToken = first("sheets.refresh_token", "GOOGLE_SHEETS_REFRESH_TOKEN")
	cfg.SpreadsheetID = first("sheets.spreadsheet_id", "GOOGLE_SHEETS_SPREADSHEET_ID")
	if name := first("sheets.spreadsheet_name", "GOOGLE_SHEETS_SPREADSHEET_NAME"); name != "" {
		cfg.SpreadsheetName = name
	}
	if v.IsSet("sheets.retry_attempts") {
		cfg.RetryAttempts = v.GetInt("sheets.retry_attempts")
	}

	return cfg
}
