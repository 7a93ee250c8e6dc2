package global

import (
	cfg "github.com/mailio/go-web3-kit/config"
)

// Conf global config
var Conf Config

type Config struct {
	cfg.YamlConfig `yaml:",inline"`
	Prometheus     PrometheusConfig `yaml:"prometheus"`
	Cors           CorsConfig       `yaml:"cors"`
}

type PrometheusConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

type CorsConfig struct {
	AllowOrigins []string `yaml:"allowOrigins"`
}
