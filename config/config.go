package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config returns the value of an environment key, loading .env first.
func Config(key string) string {
	_ = godotenv.Load(".env")
	return os.Getenv(key)
}

type Settings struct {
	Port string

	APIBaseURL  string
	IdentityURL string
	APITimeout  time.Duration
	RateLimit   float64
	RateBurst   int
	CacheTTL    time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	SessionTTL   time.Duration
	CookieSecure bool

	DB DatabaseSettings

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
	VietmapAPIKey       string

	SMTP             SMTPSettings
	ReportRecipients []string
	ReportAt         string

	ServiceEmployeeNo string
	ServicePassword   string

	LogLevel  string
	LogFormat string
}

type DatabaseSettings struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
}

type SMTPSettings struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func (d DatabaseSettings) Enabled() bool { return d.Host != "" }

func (s SMTPSettings) Enabled() bool { return s.Host != "" && s.From != "" }

func (s *Settings) CloudinaryEnabled() bool {
	return s.CloudinaryCloudName != "" && s.CloudinaryAPIKey != "" && s.CloudinaryAPISecret != ""
}

func (s *Settings) ServiceAccountEnabled() bool {
	return s.ServiceEmployeeNo != "" && s.ServicePassword != ""
}

// Load reads settings from the environment. A missing .env file is not an error.
func Load() (*Settings, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	s := &Settings{
		Port:                os.Getenv("PORT"),
		APIBaseURL:          strings.TrimRight(os.Getenv("API_BASE_URL"), "/"),
		IdentityURL:         strings.TrimRight(os.Getenv("IDENTITY_URL"), "/"),
		RedisAddr:           os.Getenv("REDIS_ADDR"),
		RedisPassword:       os.Getenv("REDIS_PASSWORD"),
		CloudinaryCloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: os.Getenv("CLOUDINARY_API_SECRET"),
		VietmapAPIKey:       os.Getenv("VIETMAP_API_KEY"),
		ReportAt:            os.Getenv("REPORT_AT"),
		ServiceEmployeeNo:   os.Getenv("SERVICE_EMPLOYEE_NO"),
		ServicePassword:     os.Getenv("SERVICE_PASSWORD"),
		LogLevel:            os.Getenv("LOG_LEVEL"),
		LogFormat:           os.Getenv("LOG_FORMAT"),
		DB: DatabaseSettings{
			Host:     os.Getenv("DB_HOST"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
		},
		SMTP: SMTPSettings{
			Host:     os.Getenv("SMTP_HOST"),
			Username: os.Getenv("SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     os.Getenv("SMTP_FROM"),
		},
	}

	var err error
	if s.APITimeout, err = durationEnv("API_TIMEOUT"); err != nil {
		return nil, err
	}
	if s.CacheTTL, err = durationEnv("CACHE_TTL"); err != nil {
		return nil, err
	}
	if s.SessionTTL, err = durationEnv("SESSION_TTL"); err != nil {
		return nil, err
	}
	if s.RateLimit, err = floatEnv("API_RATE_LIMIT"); err != nil {
		return nil, err
	}
	if s.RateBurst, err = intEnv("API_RATE_BURST"); err != nil {
		return nil, err
	}
	if s.RedisDB, err = intEnv("REDIS_DB"); err != nil {
		return nil, err
	}
	if s.DB.Port, err = intEnv("DB_PORT"); err != nil {
		return nil, err
	}
	if s.SMTP.Port, err = intEnv("SMTP_PORT"); err != nil {
		return nil, err
	}
	s.CookieSecure, _ = strconv.ParseBool(os.Getenv("COOKIE_SECURE"))

	for _, r := range strings.Split(os.Getenv("REPORT_RECIPIENTS"), ",") {
		if r = strings.TrimSpace(r); r != "" {
			s.ReportRecipients = append(s.ReportRecipients, r)
		}
	}

	s.applyDefaults()

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return s, nil
}

func (s *Settings) Validate() error {
	if s.APIBaseURL == "" {
		return errors.New("API_BASE_URL is required")
	}
	if !strings.HasPrefix(s.APIBaseURL, "http://") && !strings.HasPrefix(s.APIBaseURL, "https://") {
		return fmt.Errorf("API_BASE_URL must be an http(s) url, got %q", s.APIBaseURL)
	}
	if _, err := time.Parse("15:04", s.ReportAt); err != nil {
		return fmt.Errorf("REPORT_AT must be HH:MM, got %q", s.ReportAt)
	}
	return nil
}

func (s *Settings) applyDefaults() {
	if s.Port == "" {
		s.Port = "3000"
	}
	if s.IdentityURL == "" {
		// .../api/v1 -> .../api
		s.IdentityURL = strings.TrimSuffix(s.APIBaseURL, "/v1")
	}
	if s.APITimeout == 0 {
		s.APITimeout = 15 * time.Second
	}
	if s.CacheTTL == 0 {
		s.CacheTTL = time.Minute
	}
	if s.SessionTTL == 0 {
		s.SessionTTL = 8 * time.Hour
	}
	if s.RateLimit > 0 && s.RateBurst == 0 {
		s.RateBurst = 1
	}
	if s.DB.Port == 0 {
		s.DB.Port = 5432
	}
	if s.SMTP.Port == 0 {
		s.SMTP.Port = 587
	}
	if s.ReportAt == "" {
		s.ReportAt = "07:00"
	}
	if s.LogLevel == "" {
		s.LogLevel = "info"
	}
	if s.LogFormat == "" {
		s.LogFormat = "json"
	}
}

func durationEnv(key string) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func intEnv(key string) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func floatEnv(key string) (float64, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return f, nil
}
