package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type EnvVars struct {
	AppEnv       string        `envconfig:"APP_ENV" default:"dev"`
	Port         int           `envconfig:"PORT" default:"8080"`
	ReadTimeout  time.Duration `envconfig:"READ_TIMEOUT" default:"10s"`
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"90s"`

	// NVIDIA completion endpoint. The key may be empty at process level:
	// the UI accepts a per-session key and that override wins.
	APIKey  string        `envconfig:"NVIDIA_API_KEY"`
	APIBase string        `envconfig:"NVIDIA_API_BASE" default:"https://integrate.api.nvidia.com/v1"`
	Model   string        `envconfig:"NVIDIA_MODEL" default:"meta/llama-3.1-8b-instruct"`
	Timeout time.Duration `envconfig:"NVIDIA_TIMEOUT" default:"60s"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

func LoadEnv() (*EnvVars, error) {
	var v EnvVars
	if err := envconfig.Process("", &v); err != nil {
		return nil, err
	}
	return &v, nil
}
