package config

import (
	"testing"
	"time"
)

func TestLoadStorefrontDefaults(t *testing.T) {
	cfg := LoadStorefront()

	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.OrderEmailTimeout != 10*time.Second {
		t.Fatalf("expected 10s timeout, got %v", cfg.OrderEmailTimeout)
	}
	if cfg.CartMaxIdle != 30*time.Minute {
		t.Fatalf("expected 30m idle, got %v", cfg.CartMaxIdle)
	}
	if len(cfg.CORSAllowOrigins) != 1 || cfg.CORSAllowOrigins[0] != "*" {
		t.Fatalf("expected wildcard origins, got %v", cfg.CORSAllowOrigins)
	}
}

func TestLoadStorefrontOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("ORDER_EMAIL_URL", "http://mailer:8085/functions/v1/send-order-email")
	t.Setenv("ORDER_EMAIL_TIMEOUT", "3s")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://localhost:5173, https://shop.example.com")

	cfg := LoadStorefront()

	if cfg.Port != "9999" {
		t.Fatalf("unexpected port %q", cfg.Port)
	}
	if cfg.OrderEmailURL != "http://mailer:8085/functions/v1/send-order-email" {
		t.Fatalf("unexpected url %q", cfg.OrderEmailURL)
	}
	if cfg.OrderEmailTimeout != 3*time.Second {
		t.Fatalf("unexpected timeout %v", cfg.OrderEmailTimeout)
	}
	want := []string{"http://localhost:5173", "https://shop.example.com"}
	if len(cfg.CORSAllowOrigins) != 2 || cfg.CORSAllowOrigins[0] != want[0] || cfg.CORSAllowOrigins[1] != want[1] {
		t.Fatalf("unexpected origins %v", cfg.CORSAllowOrigins)
	}
}

func TestLoadStorefrontBadDurationFallsBack(t *testing.T) {
	t.Setenv("ORDER_EMAIL_TIMEOUT", "not-a-duration")

	cfg := LoadStorefront()
	if cfg.OrderEmailTimeout != 10*time.Second {
		t.Fatalf("expected fallback to 10s, got %v", cfg.OrderEmailTimeout)
	}
}

func TestLoadMailer(t *testing.T) {
	t.Setenv("RESEND_API_KEY", "re_test_key")
	t.Setenv("OWNER_EMAIL", "owner@example.com")

	cfg := LoadMailer()

	if cfg.Port != "8085" {
		t.Fatalf("expected default port 8085, got %q", cfg.Port)
	}
	if cfg.ResendAPIKey != "re_test_key" {
		t.Fatalf("unexpected api key %q", cfg.ResendAPIKey)
	}
	if cfg.OwnerEmail != "owner@example.com" {
		t.Fatalf("unexpected owner email %q", cfg.OwnerEmail)
	}
	if cfg.From == "" {
		t.Fatal("expected a default from address")
	}
}
