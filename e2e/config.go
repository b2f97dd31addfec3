package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_WORKER_BIN points at a built worker binary; scenarios are skipped when unset
	WorkerBin  string `envconfig:"E2E_WORKER_BIN"`
	LeaderAddr string `envconfig:"E2E_LEADER_ADDR" default:"127.0.0.1:7946"`
	GroupSize  int    `envconfig:"E2E_GROUP_SIZE" default:"3"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
