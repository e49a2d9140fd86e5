package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	AppEnv       string `yaml:"app_env"`
	DBDriver     string `yaml:"db_driver"`
	DBHost       string `yaml:"db_host"`
	DBPort       string `yaml:"db_port"`
	DBUser       string `yaml:"db_user"`
	DBPassword   string `yaml:"db_password"`
	DBName       string `yaml:"db_name"`
	DBPath       string `yaml:"db_path"`
	ServerPort   string `yaml:"server_port"`
	CORSOrigin   string `yaml:"cors_origin"`
	SeedDefaults bool   `yaml:"seed_defaults"`
}

func defaults() *Config {
	return &Config{
		AppEnv:       "development",
		DBDriver:     "postgres",
		DBHost:       "localhost",
		DBPort:       "5432",
		DBUser:       "taskflow",
		DBPassword:   "taskflow",
		DBName:       "taskflow",
		DBPath:       "taskflow.db",
		ServerPort:   "8000",
		CORSOrigin:   "http://localhost:3000",
		SeedDefaults: true,
	}
}

// Load reads the optional YAML file named by CONFIG_FILE, then the .env
// file, then the environment. Later sources win.
func Load() (*Config, error) {
	cfg := defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg.AppEnv = getEnv("APP_ENV", cfg.AppEnv)
	cfg.DBDriver = getEnv("DB_DRIVER", cfg.DBDriver)
	cfg.DBHost = getEnv("DB_HOST", cfg.DBHost)
	cfg.DBPort = getEnv("DB_PORT", cfg.DBPort)
	cfg.DBUser = getEnv("DB_USER", cfg.DBUser)
	cfg.DBPassword = getEnv("DB_PASSWORD", cfg.DBPassword)
	cfg.DBName = getEnv("DB_NAME", cfg.DBName)
	cfg.DBPath = getEnv("DB_PATH", cfg.DBPath)
	cfg.ServerPort = getEnv("SERVER_PORT", cfg.ServerPort)
	cfg.CORSOrigin = getEnv("CORS_ORIGIN", cfg.CORSOrigin)
	if v, ok := os.LookupEnv("SEED_DEFAULTS"); ok {
		seed, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("SEED_DEFAULTS: %w", err)
		}
		cfg.SeedDefaults = seed
	}

	if cfg.DBDriver != "postgres" && cfg.DBDriver != "sqlite" {
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config file: %w", err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return fmt.Errorf("decode config file: %w", err)
	}
	return nil
}

// DSN returns the postgres connection string
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName,
	)
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
