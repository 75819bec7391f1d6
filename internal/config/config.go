package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	applog "wolfstats/internal/log"
)

// Backends lists the accepted DATA_BACKEND values.
var Backends = []string{"csv", "download", "sqlite", "sheets", "memory"}

type Config struct {
	// Dataset source
	DataBackend string
	DatasetPath string
	DatasetURL  string
	HTTPTimeout time.Duration

	// Database
	SQLiteDBPath string

	// Google Sheets
	GoogleSpreadsheetID      string
	GoogleSheetName          string
	GoogleServiceAccountJSON string
	GoogleServiceAccountFile string

	// Report
	ReportPlan     string
	ChartOutputDir string
	MemoCacheSize  int

	// AMQP, optional
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	// Pushgateway, optional
	PushgatewayURL string
	PushgatewayJob string

	LogLevel string
}

func Load() *Config {
	return &Config{
		DataBackend: getEnv("DATA_BACKEND", "csv"),
		DatasetPath: getEnv("DATASET_PATH", "global_wolves.csv"),
		DatasetURL:  getEnv("DATASET_URL", ""),
		HTTPTimeout: getEnvDuration("HTTP_TIMEOUT", 30*time.Second),

		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "./data/wolfstats.db"),

		GoogleSpreadsheetID:      getEnv("GOOGLE_SPREADSHEET_ID", ""),
		GoogleSheetName:          getEnv("GOOGLE_SHEET_NAME", "global_wolves"),
		GoogleServiceAccountJSON: getEnv("GOOGLE_SERVICE_ACCOUNT_JSON", ""),
		GoogleServiceAccountFile: getEnv("GOOGLE_SERVICE_ACCOUNT_FILE", ""),

		ReportPlan:     getEnv("REPORT_PLAN", ""),
		ChartOutputDir: getEnv("CHART_OUTPUT_DIR", "charts"),
		MemoCacheSize:  getEnvInt("MEMO_CACHE_SIZE", 1024),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "wolfstats"),
		AMQPQueue:    getEnv("AMQP_QUEUE", "wolfstats_reports"),

		PushgatewayURL: getEnv("PUSHGATEWAY_URL", ""),
		PushgatewayJob: getEnv("PUSHGATEWAY_JOB", "wolfstats"),

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if !slices.Contains(Backends, c.DataBackend) {
		errors = append(errors, fmt.Sprintf("invalid data backend '%s': must be one of %v", c.DataBackend, Backends))
	}

	switch c.DataBackend {
	case "csv":
		if c.DatasetPath == "" {
			errors = append(errors, "dataset path cannot be empty when using csv backend")
		}
	case "download":
		if c.DatasetPath == "" {
			errors = append(errors, "dataset path cannot be empty when using download backend")
		}
		if c.DatasetURL == "" {
			errors = append(errors, "DATASET_URL is required when using download backend")
		} else if msg := checkHTTPURL("dataset URL", c.DatasetURL); msg != "" {
			errors = append(errors, msg)
		}
	case "sqlite":
		if c.SQLiteDBPath == "" {
			errors = append(errors, "SQLite database path cannot be empty when using sqlite backend")
		} else {
			// Check if directory exists or can be created
			dir := filepath.Dir(c.SQLiteDBPath)
			if dir != "." && dir != "" {
				if _, err := os.Stat(dir); os.IsNotExist(err) {
					if err := os.MkdirAll(dir, 0755); err != nil {
						errors = append(errors, fmt.Sprintf("cannot create SQLite database directory '%s': %v", dir, err))
					}
				}
			}
		}
	case "sheets":
		if c.GoogleSpreadsheetID == "" {
			errors = append(errors, "Google Spreadsheet ID is required when using sheets backend")
		}
		if c.GoogleSheetName == "" {
			errors = append(errors, "Google Sheet name is required when using sheets backend")
		}
		if c.GoogleServiceAccountFile != "" {
			if _, err := os.Stat(c.GoogleServiceAccountFile); os.IsNotExist(err) {
				errors = append(errors, fmt.Sprintf("Google service account file does not exist: %s", c.GoogleServiceAccountFile))
			}
		}
	}

	if c.HTTPTimeout < time.Second {
		errors = append(errors, fmt.Sprintf("invalid HTTP timeout %v: must be at least 1 second", c.HTTPTimeout))
	} else if c.HTTPTimeout > 10*time.Minute {
		errors = append(errors, fmt.Sprintf("invalid HTTP timeout %v: must be at most 10 minutes", c.HTTPTimeout))
	}

	if c.MemoCacheSize < 0 {
		errors = append(errors, fmt.Sprintf("invalid memo cache size %d: must not be negative", c.MemoCacheSize))
	}

	if c.ChartOutputDir == "" {
		errors = append(errors, "chart output directory cannot be empty")
	}

	if c.ReportPlan != "" {
		if _, err := os.Stat(c.ReportPlan); err != nil {
			errors = append(errors, fmt.Sprintf("report plan not readable: %v", err))
		}
	}

	// Validate AMQP URL if provided
	if c.AMQPURL != "" {
		if parsedURL, err := url.Parse(c.AMQPURL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}
		if c.AMQPExchange == "" {
			errors = append(errors, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if c.AMQPQueue == "" {
			errors = append(errors, "AMQP queue name cannot be empty when AMQP URL is provided")
		}
	}

	if c.PushgatewayURL != "" {
		if msg := checkHTTPURL("Pushgateway URL", c.PushgatewayURL); msg != "" {
			errors = append(errors, msg)
		}
		if c.PushgatewayJob == "" {
			errors = append(errors, "Pushgateway job name cannot be empty when Pushgateway URL is provided")
		}
	}

	if _, err := applog.ParseLevel(c.LogLevel); err != nil {
		errors = append(errors, err.Error())
	}

	// Return combined errors
	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func checkHTTPURL(name, raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Sprintf("invalid %s '%s': %v", name, raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Sprintf("invalid %s scheme '%s': must be 'http' or 'https'", name, u.Scheme)
	}
	return ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
