package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Defaults DefaultsConfig
	Render   RenderConfig
	Fetch    FetchConfig
	Supabase SupabaseConfig
	Log      LogConfig
}

// DefaultsConfig is the bottom layer of the option merge.
type DefaultsConfig struct {
	Width           int
	Height          int
	Format          string
	BackgroundColor string
	TextColor       string
	FontSize        int
	Prefix          string
	Output          string
}

type RenderConfig struct {
	FontPath    string
	JPEGQuality int
}

type FetchConfig struct {
	Timeout      time.Duration
	MaxAssetSize int64
}

type SupabaseConfig struct {
	URL string
	KEY string
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Println("Failed to read .env file:", err)
	}

	cfg := &Config{
		Defaults: DefaultsConfig{
			Width:           getEnvAsInt("EZ_WIDTH", 100),
			Height:          getEnvAsInt("EZ_HEIGHT", 100),
			Format:          getEnv("EZ_FORMAT", "png"),
			BackgroundColor: getEnv("EZ_BACKGROUND_COLOR", "#D3D3D3"),
			TextColor:       getEnv("EZ_TEXT_COLOR", "#000000"),
			FontSize:        getEnvAsInt("EZ_FONT_SIZE", 48),
			Prefix:          getEnv("EZ_PREFIX", "image-"),
			Output:          getEnv("EZ_OUTPUT", ""),
		},
		Render: RenderConfig{
			FontPath:    getEnv("EZ_FONT_PATH", ""),
			JPEGQuality: getEnvAsInt("EZ_JPEG_QUALITY", 85),
		},
		Fetch: FetchConfig{
			Timeout:      getDuration("EZ_FETCH_TIMEOUT", 30*time.Second),
			MaxAssetSize: getEnvAsInt64("EZ_MAX_ASSET_SIZE", 10*1024*1024), // 10MB
		},
		Supabase: SupabaseConfig{
			URL: getEnv("SUPABASE_URL", ""),
			KEY: getEnv("SUPABASE_KEY", ""),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", ""),
		},
	}

	if cfg.Defaults.Output == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		cfg.Defaults.Output = wd
	}

	if cfg.Render.JPEGQuality < 1 || cfg.Render.JPEGQuality > 100 {
		cfg.Render.JPEGQuality = 85
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvAsInt64(key string, defaultVal int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultVal
}
