package cmd

import (
	"fmt"
	"strconv"
)

const (
	defaultCandidateLimit = 10
	defaultListLimit      = 30
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// NotifyMode selects the outbound notification channel: "push" for the
	// HTTP gateway, "amqp" for the message broker.
	NotifyMode     string
	PushGatewayURL string
	PushToken      string
	AmqpURL        string
	AmqpExchange   string

	CandidateLimit int
	ListLimit      int
}

// DSN builds the PostgreSQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// LimitOrDefault parses a limit setting, falling back when unset or invalid.
func LimitOrDefault(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}
