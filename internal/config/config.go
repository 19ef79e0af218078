package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type ReportsConfig struct {
	RootDir string `yaml:"root_dir"`
}

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`
	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUser     string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
	} `yaml:"email"`
	Reports ReportsConfig `yaml:"reports"`
}

func LoadConfig() *Config {
	cfg, err := loadFrom("config/config.yaml")
	if err != nil {
		panic("Failed to load config.yaml: " + err.Error())
	}
	return cfg
}

func loadFrom(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Reports.RootDir == "" {
		cfg.Reports.RootDir = "./reports"
	}
	return &cfg, nil
}
