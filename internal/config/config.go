package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is read from the environment once at startup. Every field has a
// development default so the server runs with no configuration at all.
type Config struct {
	// Addr is the listen address of the API server.
	Addr string
	// AllowedOrigins feed the CORS middleware.
	AllowedOrigins []string
	// APIBaseURL is where the client points: a relative path when co-hosted,
	// an explicit host:port in development.
	APIBaseURL string
	// TokenFile persists the session token between client runs. Empty keeps
	// the token in memory only.
	TokenFile string
	// PaymentSuccessProbability in [0,1].
	PaymentSuccessProbability float64
	// PaymentDelay is the artificial processing latency.
	PaymentDelay time.Duration
}

func FromEnv() Config {
	cfg := Config{
		Addr:                      getEnv("SHOP_ADDR", ":3001"),
		APIBaseURL:                getEnv("SHOP_API_BASE_URL", "http://localhost:3001/api"),
		TokenFile:                 os.Getenv("SHOP_TOKEN_FILE"),
		PaymentSuccessProbability: 0.9,
		PaymentDelay:              1500 * time.Millisecond,
	}
	origins := getEnv("SHOP_ALLOWED_ORIGINS", "http://localhost:8080")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
		}
	}
	if v := os.Getenv("SHOP_PAYMENT_SUCCESS_PROB"); v != "" {
		if p, err := strconv.ParseFloat(v, 64); err == nil && p >= 0 && p <= 1 {
			cfg.PaymentSuccessProbability = p
		}
	}
	if v := os.Getenv("SHOP_PAYMENT_DELAY_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms >= 0 {
			cfg.PaymentDelay = time.Duration(ms) * time.Millisecond
		}
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
