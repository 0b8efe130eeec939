package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Delete policies for parents (Plant, Location) that still have children.
const (
	DeleteOrphan   = "orphan"
	DeleteRestrict = "restrict"
	DeleteCascade  = "cascade"
)

type AppConfig struct {
	Port           string        `env:"PORT" env-default:"8080"`
	DBPath         string        `env:"DB_PATH" env-default:"agri.db"`
	LogLevel       string        `env:"LOG_LEVEL" env-default:"info"`
	LogFormat      string        `env:"LOG_FORMAT" env-default:"json"` // json|console
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" env-default:"10s"`
	PageSize       int           `env:"PAGE_SIZE" env-default:"10"`

	DeletePolicy    string `env:"DELETE_POLICY" env-default:"orphan"`
	EnforceAreaCap  bool   `env:"ENFORCE_AREA_CAP" env-default:"false"`
	StrictCropNames bool   `env:"STRICT_CROP_NAMES" env-default:"false"`
	RequireUserID   bool   `env:"REQUIRE_USER_ID" env-default:"false"`

	CostCropsCSV   string `env:"COST_CROPS_CSV"`
	CostFactorsCSV string `env:"COST_FACTORS_CSV"`
	CostXLSX       string `env:"COST_XLSX"`
}

// Load reads .env (if present) into the process environment and then the
// environment into AppConfig.
func Load() (AppConfig, error) {
	// .env is optional
	_ = godotenv.Load()

	var cfg AppConfig
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return AppConfig{}, fmt.Errorf("read env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

func (c *AppConfig) Validate() error {
	c.DeletePolicy = strings.ToLower(strings.TrimSpace(c.DeletePolicy))
	switch c.DeletePolicy {
	case DeleteOrphan, DeleteRestrict, DeleteCascade:
	default:
		return fmt.Errorf("DELETE_POLICY must be orphan, restrict or cascade, got %q", c.DeletePolicy)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive, got %s", c.RequestTimeout)
	}
	if c.PageSize <= 0 {
		c.PageSize = 10
	}
	return nil
}

// Fields renders the config for a startup log line.
func (c AppConfig) Fields() []zap.Field {
	return []zap.Field{
		zap.String("port", c.Port),
		zap.String("db_path", c.DBPath),
		zap.String("log_level", c.LogLevel),
		zap.Duration("request_timeout", c.RequestTimeout),
		zap.String("delete_policy", c.DeletePolicy),
		zap.Bool("enforce_area_cap", c.EnforceAreaCap),
		zap.Bool("strict_crop_names", c.StrictCropNames),
		zap.Bool("require_user_id", c.RequireUserID),
		zap.String("cost_crops_csv", c.CostCropsCSV),
		zap.String("cost_factors_csv", c.CostFactorsCSV),
		zap.String("cost_xlsx", c.CostXLSX),
	}
}
