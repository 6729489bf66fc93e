package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	BackendDynamoDB = "dynamodb"
	BackendMemory   = "memory"
)

type Config struct {
	// HTTP Server
	Port string

	// Backend selection
	DataBackend string

	// Calendar boundaries of periods and reports
	Timezone string

	// AWS / DynamoDB
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoDBEndpoint   string
	CreateTables       bool

	// Tables
	ResponsiblesTable string
	VehiclesTable     string
	FuelRecordsTable  string
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		DataBackend: getEnv("DATA_BACKEND", BackendDynamoDB),
		Timezone:    getEnv("APP_TIMEZONE", "America/Sao_Paulo"),

		// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
		AWSRegion:          getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", "local"),
		AWSSecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", "local"),
		DynamoDBEndpoint:   getEnv("DYNAMODB_ENDPOINT", ""),
		CreateTables:       getEnvBool("DYNAMODB_CREATE_TABLES", false),

		ResponsiblesTable: getEnv("RESPONSIBLES_TABLE", "responsibles"),
		VehiclesTable:     getEnv("VEHICLES_TABLE", "vehicles"),
		FuelRecordsTable:  getEnv("FUEL_RECORDS_TABLE", "fuel_records"),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	validBackends := []string{BackendDynamoDB, BackendMemory}
	isValidBackend := false
	for _, backend := range validBackends {
		if c.DataBackend == backend {
			isValidBackend = true
			break
		}
	}
	if !isValidBackend {
		errors = append(errors, fmt.Sprintf("invalid data backend '%s': must be one of %v", c.DataBackend, validBackends))
	}

	if _, err := time.LoadLocation(c.Timezone); err != nil {
		errors = append(errors, fmt.Sprintf("invalid timezone '%s': %v", c.Timezone, err))
	}

	if c.DataBackend == BackendDynamoDB {
		if c.AWSRegion == "" {
			errors = append(errors, "AWS region is required when using dynamodb backend")
		}
		tables := map[string]string{
			"RESPONSIBLES_TABLE": c.ResponsiblesTable,
			"VEHICLES_TABLE":     c.VehiclesTable,
			"FUEL_RECORDS_TABLE": c.FuelRecordsTable,
		}
		for _, key := range []string{"RESPONSIBLES_TABLE", "VEHICLES_TABLE", "FUEL_RECORDS_TABLE"} {
			if strings.TrimSpace(tables[key]) == "" {
				errors = append(errors, fmt.Sprintf("%s cannot be empty when using dynamodb backend", key))
			}
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// Location returns the configured timezone, UTC when it cannot be loaded.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
