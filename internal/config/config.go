// Package config loads service configuration from the environment with
// sensible local-development defaults.
package config

import (
	"os"
	"strings"
	"time"
)

// Storefront configures the storefront API service.
type Storefront struct {
	Port              string
	OrderEmailURL     string
	OrderEmailTimeout time.Duration
	CORSAllowOrigins  []string
	CartMaxIdle       time.Duration
}

// Mailer configures the order-email function service.
type Mailer struct {
	Port             string
	ResendAPIKey     string
	ResendBaseURL    string
	From             string
	OwnerEmail       string
	CORSAllowOrigins []string
}

func LoadStorefront() Storefront {
	return Storefront{
		Port:              getenv("PORT", "8080"),
		OrderEmailURL:     getenv("ORDER_EMAIL_URL", "http://localhost:8085/functions/v1/send-order-email"),
		OrderEmailTimeout: parseDuration(getenv("ORDER_EMAIL_TIMEOUT", "10s"), 10*time.Second),
		CORSAllowOrigins:  splitCSV(getenv("CORS_ALLOW_ORIGINS", "*")),
		CartMaxIdle:       parseDuration(getenv("CART_MAX_IDLE", "30m"), 30*time.Minute),
	}
}

func LoadMailer() Mailer {
	return Mailer{
		Port:             getenv("PORT", "8085"),
		ResendAPIKey:     os.Getenv("RESEND_API_KEY"),
		ResendBaseURL:    os.Getenv("RESEND_BASE_URL"),
		From:             getenv("MAIL_FROM", "NBooks Store <onboarding@resend.dev>"),
		OwnerEmail:       getenv("OWNER_EMAIL", "store@nbooks.com"),
		CORSAllowOrigins: splitCSV(getenv("CORS_ALLOW_ORIGINS", "*")),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); strings.TrimSpace(v) != "" {
		return v
	}
	return def
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func parseDuration(v string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
