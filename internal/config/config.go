// Package config reads settings from the environment, optionally seeded
// from .env files.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DBPath        string
	ContactDelay  time.Duration
	FrameRate     int
	AdminUsername string
	AdminPassword string
	// MaxSessions caps concurrent websocket simulations.
	MaxSessions int
	// ModelPath is the OBJ file shown by the 3D viewer.
	ModelPath string
}

func Defaults() Config {
	return Config{
		Port:          "8080",
		DBPath:        "folio.db",
		ContactDelay:  1500 * time.Millisecond,
		FrameRate:     60,
		AdminUsername: "admin",
		AdminPassword: "admin123",
		MaxSessions:   100,
		ModelPath:     "static/models/gem.obj",
	}
}

// Load merges the given .env files into the environment (existing
// variables win) and reads the configuration. Missing files are fine.
func Load(files ...string) (Config, error) {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromEnv(os.Getenv)
}

// FromEnv reads the configuration through getenv, falling back to
// Defaults for anything unset.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Defaults()

	if v := getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := getenv("DB_PATH"); v != "" {
		cfg.DBPath = v
	}
	if v := getenv("MODEL_PATH"); v != "" {
		cfg.ModelPath = v
	}
	if v := getenv("CONTACT_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("CONTACT_DELAY: %w", err)
		}
		cfg.ContactDelay = d
	}
	if v := getenv("FRAME_RATE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("FRAME_RATE: want a positive integer, got %q", v)
		}
		cfg.FrameRate = n
	}
	if v := getenv("MAX_SESSIONS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("MAX_SESSIONS: want a positive integer, got %q", v)
		}
		cfg.MaxSessions = n
	}

	if v := getenv("ADMIN_USERNAME"); v != "" {
		cfg.AdminUsername = v
	} else {
		log.Println("WARNING: Using default admin username. Set ADMIN_USERNAME environment variable.")
	}
	if v := getenv("ADMIN_PASSWORD"); v != "" {
		cfg.AdminPassword = v
	} else {
		log.Println("WARNING: Using default admin password. Set ADMIN_PASSWORD environment variable.")
	}
	return cfg, nil
}
