package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string   `yaml:"log-level" env-default:"info"`
	HTTPPort string   `yaml:"http-port" env-default:"8080"`
	Redis    Redis    `yaml:"redis"`
	OpenAI   OpenAI   `yaml:"openai"`
	Question Question `yaml:"question"`
}

type Redis struct {
	Host string `yaml:"host" env-default:"localhost"`
	Port string `yaml:"port" env-default:"6379"`
}

type OpenAI struct {
	APIKey  string `yaml:"api-key" env:"OPENAI_API_KEY"`
	Model   string `yaml:"model" env-default:"gpt-4o-mini"`
	BaseURL string `yaml:"base-url" env-default:""`
}

type Question struct {
	CacheTTL             time.Duration `yaml:"cache-ttl" env-default:"10m"`
	CachePruneThreshold  int           `yaml:"cache-prune-threshold" env-default:"100"`
	RetryInitialInterval time.Duration `yaml:"retry-initial-interval" env-default:"1s"`
	RetryMaxAttempts     uint64        `yaml:"retry-max-attempts" env-default:"3"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
