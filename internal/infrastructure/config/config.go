package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DriverMemory   = "memory"
	DriverDynamoDB = "dynamodb"
)

// Tables holds the DynamoDB table names, one per entity kind.
type Tables struct {
	Leads     string
	Companies string
	Estimates string
	Jobs      string
	Invoices  string
	Payments  string
	Events    string
}

// Config is the process configuration, read once from the environment.
//
// Supported env vars:
//   - PORT (default: 8080)
//   - PERSISTENCE_DRIVER (memory|dynamodb, default: memory)
//   - LEADS_TABLE, COMPANIES_TABLE, ESTIMATES_TABLE, JOBS_TABLE,
//     INVOICES_TABLE, PAYMENTS_TABLE, EVENTS_TABLE
//   - OVERDUE_SWEEP_INTERVAL (Go duration, default: 1h; 0 disables the sweep)
//   - MERCADOPAGO_ACCESS_TOKEN
//   - PAYMENT_GATEWAY_MOCK / MERCADOPAGO_MOCK (1|true|yes|on|mock)
//   - MERCADOPAGO_TEST_PAYER_EMAIL, MERCADOPAGO_TEST_PAYER_USER_ID
type Config struct {
	Port                 int
	PersistenceDriver    string
	Tables               Tables
	OverdueSweepInterval time.Duration

	MercadoPagoAccessToken string
	PaymentGatewayMock     bool
	SandboxPayerEmail      string
	SandboxPayerUserID     string
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	cfg := Config{
		PersistenceDriver: strings.ToLower(getenvDefault("PERSISTENCE_DRIVER", DriverMemory)),
		Tables: Tables{
			Leads:     getenvDefault("LEADS_TABLE", "leads"),
			Companies: getenvDefault("COMPANIES_TABLE", "companies"),
			Estimates: getenvDefault("ESTIMATES_TABLE", "estimates"),
			Jobs:      getenvDefault("JOBS_TABLE", "jobs"),
			Invoices:  getenvDefault("INVOICES_TABLE", "invoices"),
			Payments:  getenvDefault("PAYMENTS_TABLE", "invoice_payments"),
			Events:    getenvDefault("EVENTS_TABLE", "transition_events"),
		},
		MercadoPagoAccessToken: strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")),
		PaymentGatewayMock:     isEnabled("PAYMENT_GATEWAY_MOCK") || isEnabled("MERCADOPAGO_MOCK"),
		SandboxPayerEmail:      strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")),
		SandboxPayerUserID:     strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_USER_ID")),
	}

	port, err := strconv.Atoi(getenvDefault("PORT", "8080"))
	if err != nil || port <= 0 {
		return Config{}, fmt.Errorf("invalid PORT %q", os.Getenv("PORT"))
	}
	cfg.Port = port

	switch cfg.PersistenceDriver {
	case DriverMemory, DriverDynamoDB:
	default:
		return Config{}, fmt.Errorf("unknown PERSISTENCE_DRIVER %q", cfg.PersistenceDriver)
	}

	interval, err := time.ParseDuration(getenvDefault("OVERDUE_SWEEP_INTERVAL", "1h"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid OVERDUE_SWEEP_INTERVAL: %w", err)
	}
	cfg.OverdueSweepInterval = interval

	log.Printf("[config][env] loaded port=%d driver=%s sweep_interval=%s payment_mock=%t",
		cfg.Port, cfg.PersistenceDriver, cfg.OverdueSweepInterval, cfg.PaymentGatewayMock)
	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func isEnabled(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
