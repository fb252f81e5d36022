package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// DefaultEndpointURL is the set members endpoint the service was built for.
const DefaultEndpointURL = "https://api-na.hosted.exlibrisgroup.com/almaws/v1/conf/sets/15528919710002976/members"

type Config struct {
	Addr           string        `env:"APP_ADDR" validate:"required"`
	EndpointURL    string        `env:"ILS_ENDPOINT_URL" validate:"required,url"`
	APIKey         string        `env:"ILS_API_KEY" validate:"required"`
	Format         string        `env:"ILS_FORMAT" validate:"required"`
	MaxAttempts    int           `env:"ILS_MAX_ATTEMPTS" validate:"gte=1,lte=10"`
	BackoffFactor  time.Duration `env:"ILS_BACKOFF_FACTOR" validate:"gte=0"`
	Timeout        time.Duration `env:"ILS_TIMEOUT" validate:"gt=0"`
	RPS            float64       `env:"ILS_RPS" validate:"gt=0"`
	StrictPayload  bool          `env:"ILS_STRICT_PAYLOAD"`
	Verbose        bool          `env:"VERBOSE"`
	RateLimitRPS   float64       `env:"RATE_LIMIT_RPS" validate:"gt=0"`
	RateLimitBurst int           `env:"RATE_LIMIT_BURST" validate:"gt=0"`
	TrustedProxies []string      `env:"TRUSTED_PROXIES" validate:"dive,ip"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("env"); name != "" {
			return name
		}
		return f.Name
	})
}

// LoadEnvFiles reads .env and .env.local. Variables already set in the
// process environment win.
func LoadEnvFiles() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

// Load builds a Config from the environment and validates it.
func Load() (Config, error) {
	var errs []error

	cfg := Config{
		Addr:           getEnv("APP_ADDR", ":8080"),
		EndpointURL:    getEnv("ILS_ENDPOINT_URL", DefaultEndpointURL),
		APIKey:         os.Getenv("ILS_API_KEY"),
		Format:         getEnv("ILS_FORMAT", "json"),
		MaxAttempts:    getInt("ILS_MAX_ATTEMPTS", 5, &errs),
		BackoffFactor:  getDuration("ILS_BACKOFF_FACTOR", time.Second, &errs),
		Timeout:        getDuration("ILS_TIMEOUT", 30*time.Second, &errs),
		RPS:            getFloat("ILS_RPS", 10, &errs),
		StrictPayload:  getBool("ILS_STRICT_PAYLOAD", false, &errs),
		Verbose:        getBool("VERBOSE", false, &errs),
		RateLimitRPS:   getFloat("RATE_LIMIT_RPS", 5, &errs),
		RateLimitBurst: getInt("RATE_LIMIT_BURST", 10, &errs),
		TrustedProxies: getList("TRUSTED_PROXIES"),
	}
	if len(errs) > 0 {
		return Config{}, errors.Join(errs...)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid field by its environment variable name.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	messages := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		field := fe.Field()
		switch fe.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("%s is required", field))
		case "url":
			messages = append(messages, fmt.Sprintf("%s must be a valid URL", field))
		case "ip":
			messages = append(messages, fmt.Sprintf("%s must be an IP address", field))
		case "gt", "gte", "lte":
			messages = append(messages, fmt.Sprintf("%s must be %s %s", field, fe.Tag(), fe.Param()))
		default:
			messages = append(messages, fmt.Sprintf("%s is invalid", field))
		}
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(messages, "; "))
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getList splits a comma-separated variable, dropping empty entries.
func getList(key string) []string {
	var out []string
	for _, v := range strings.Split(os.Getenv(key), ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func getInt(key string, def int, errs *[]error) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return n
}

func getFloat(key string, def float64, errs *[]error) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return f
}

func getBool(key string, def bool, errs *[]error) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return b
}

func getDuration(key string, def time.Duration, errs *[]error) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return d
}
