// Package config loads rollcall's settings from the environment and the
// device-profile file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	SerialPort string // ROLLCALL_SERIAL_PORT (default "/dev/ttyUSB0")
	BaudRate   int    // ROLLCALL_BAUD_RATE (default 9600)

	DataFile    string // ROLLCALL_DATA_FILE (default "students.dat")
	DatabaseURL string // ROLLCALL_DATABASE_URL (optional, empty = snapshot file store)
	NATSURL     string // ROLLCALL_NATS_URL (optional, empty = no events)

	// Backup settings
	BackupInterval   time.Duration // ROLLCALL_BACKUP_INTERVAL (default 3m; 0 = disabled)
	BackupS3Bucket   string        // ROLLCALL_BACKUP_S3_BUCKET (enables S3 when set)
	BackupS3Endpoint string        // ROLLCALL_BACKUP_S3_ENDPOINT (custom endpoint for MinIO)
	BackupS3Region   string        // ROLLCALL_BACKUP_S3_REGION (default "us-east-1")
	BackupS3Prefix   string        // ROLLCALL_BACKUP_S3_PREFIX (default "rollcall"; dated keys beneath it)
}

func Load() (*Config, error) {
	c := &Config{
		SerialPort:       envOrDefault("ROLLCALL_SERIAL_PORT", "/dev/ttyUSB0"),
		DataFile:         envOrDefault("ROLLCALL_DATA_FILE", "students.dat"),
		DatabaseURL:      os.Getenv("ROLLCALL_DATABASE_URL"),
		NATSURL:          os.Getenv("ROLLCALL_NATS_URL"),
		BackupS3Bucket:   os.Getenv("ROLLCALL_BACKUP_S3_BUCKET"),
		BackupS3Endpoint: os.Getenv("ROLLCALL_BACKUP_S3_ENDPOINT"),
		BackupS3Region:   envOrDefault("ROLLCALL_BACKUP_S3_REGION", "us-east-1"),
		BackupS3Prefix:   envOrDefault("ROLLCALL_BACKUP_S3_PREFIX", "rollcall"),
	}

	baudStr := envOrDefault("ROLLCALL_BAUD_RATE", "9600")
	baud, err := strconv.Atoi(baudStr)
	if err != nil || baud <= 0 {
		return nil, fmt.Errorf("ROLLCALL_BAUD_RATE: invalid value %q", baudStr)
	}
	c.BaudRate = baud

	intervalStr := envOrDefault("ROLLCALL_BACKUP_INTERVAL", "3m")
	if intervalStr != "" {
		d, err := time.ParseDuration(intervalStr)
		if err != nil {
			return nil, fmt.Errorf("ROLLCALL_BACKUP_INTERVAL: %w", err)
		}
		c.BackupInterval = d
	}

	return c, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
