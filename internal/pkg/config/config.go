package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	DBUsername string `yaml:"db_username"`
	DBPassword string `yaml:"db_password"`
	DBHost     string `yaml:"db_host"`
	DBPort     string `yaml:"db_port"`
	DBName     string `yaml:"db_name"`
	DisableTLS bool   `yaml:"disable_tls"`

	RedisAddr     string `yaml:"redis_addr"`
	RedisPassword string `yaml:"redis_password"`

	BaseUrl        string `yaml:"base_url"`
	PrivateKeyFile string `yaml:"private_key_file"`

	// Bimonthly pay period policy and the history listing depth.
	FirstPeriodEnd     int `yaml:"first_period_end"`
	SecondPeriodEnd    int `yaml:"second_period_end"`
	PayProcessingDelay int `yaml:"pay_processing_delay_days"`
	HistoryPeriods     int `yaml:"history_periods"`

	LoginCodeTTLMinutes int `yaml:"login_code_ttl_minutes"`
}

func NewConfig() (*Config, error) {
	return Load("config.yaml")
}

func Load(path string) (*Config, error) {
	var c Config

	yamlFile, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal(yamlFile, &c)
	if err != nil {
		return nil, err
	}

	if c.DBUsername == "" || c.DBPassword == "" || c.DBHost == "" || c.DBName == "" {
		return nil, errors.New("missing required database configuration")
	}

	if c.PrivateKeyFile == "" {
		c.PrivateKeyFile = "./private.pem"
	}
	if c.FirstPeriodEnd == 0 {
		c.FirstPeriodEnd = 15
	}
	if c.SecondPeriodEnd == 0 {
		c.SecondPeriodEnd = 30
	}
	if c.PayProcessingDelay == 0 {
		c.PayProcessingDelay = 5
	}
	if c.HistoryPeriods == 0 {
		c.HistoryPeriods = 3
	}
	if c.LoginCodeTTLMinutes == 0 {
		c.LoginCodeTTLMinutes = 10
	}

	return &c, nil
}
