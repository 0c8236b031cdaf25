package middleware

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"

	"ChecklistPro/Models"
)

// LogConfig holds configuration for the logging middleware
type LogConfig struct {
	// Enable console logging
	Console bool
	// Enable file logging
	File bool
	// Log file path
	LogFilePath string
	// Skip logging for specific paths
	SkipPaths []string
}

// LogData contains all the information that will be logged
type LogData struct {
	Timestamp time.Time     `json:"timestamp"`
	Method    string        `json:"method"`
	Path      string        `json:"path"`
	Status    int           `json:"status"`
	Latency   time.Duration `json:"latency"`
	IP        string        `json:"ip"`
	UserID    interface{}   `json:"user_id,omitempty"`
	Username  string        `json:"username,omitempty"`
	Error     string        `json:"error,omitempty"`
}

// DefaultLogConfig returns a default configuration for the logging middleware
func DefaultLogConfig() LogConfig {
	return LogConfig{
		Console:     true,
		File:        true,
		LogFilePath: "logs/requests.log",
		SkipPaths:   []string{"/health"},
	}
}

// RequestLogger creates a new logging middleware with the given configuration
func RequestLogger(config ...LogConfig) fiber.Handler {
	cfg := DefaultLogConfig()
	if len(config) > 0 {
		cfg = config[0]
	}

	if cfg.File {
		if err := os.MkdirAll("logs", 0755); err != nil {
			log.Printf("Error creating logs directory: %v\n", err)
		}
	}

	return func(c *fiber.Ctx) error {
		start := time.Now()

		for _, skipPath := range cfg.SkipPaths {
			if c.Path() == skipPath {
				return c.Next()
			}
		}

		err := c.Next()

		data := LogData{
			Timestamp: start,
			Method:    c.Method(),
			Path:      c.Path(),
			Status:    c.Response().StatusCode(),
			Latency:   time.Since(start),
			IP:        c.IP(),
		}
		if err != nil {
			data.Error = err.Error()
		}
		if user, ok := c.Locals("user").(Models.User); ok {
			data.UserID = user.ID
			data.Username = user.Name
		}

		if cfg.Console {
			log.Printf("%s %s %d %s", data.Method, data.Path, data.Status, data.Latency)
		}
		if cfg.File {
			writeLogLine(cfg.LogFilePath, data)
		}

		return err
	}
}

func writeLogLine(path string, data LogData) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Error opening log file: %v\n", err)
		return
	}
	defer f.Close()

	line, err := json.Marshal(data)
	if err != nil {
		return
	}
	line = append(line, '\n')
	if _, err := f.Write(line); err != nil {
		log.Printf("Error writing log file: %v\n", err)
	}
}
