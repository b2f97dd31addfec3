package internal

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type Config struct {
	Rank              int           `env:"RANK,required=true" validate:"min=0"`
	GroupSize         int           `env:"GROUP_SIZE,required=true" validate:"min=1"`
	LeaderAddr        string        `env:"LEADER_ADDR,required=true" validate:"hostname_port"`
	Transport         string        `env:"TRANSPORT,default=tcp" validate:"oneof=tcp local"`
	StagedBuffers     bool          `env:"STAGED_BUFFERS,default=false"`
	JoinTimeout       time.Duration `env:"JOIN_TIMEOUT,default=30s"`
	HeartbeatInterval time.Duration `env:"HEARTBEAT_INTERVAL,default=5s"`
	RestartInterval   time.Duration `env:"RESTART_INTERVAL,default=200ms"`
	BadgerFilepath    string        `env:"BADGER_FILEPATH,required=true"`
	Study             string        `env:"STUDY_NAME,required=true"`
	SamplerSeed       uint64        `env:"SAMPLER_SEED,default=42"`
	TrialSteps        int64         `env:"TRIAL_STEPS,default=10"`
	LogLevel          string        `env:"LOG_LEVEL,required=true"`
	DebugPort         int           `env:"DEBUG_PORT,default=8081"`
}

// Validate rejects configurations the group could never form with: a rank
// outside [0, size) would leave the leader waiting for a join forever.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	if c.Rank >= c.GroupSize {
		return fmt.Errorf(
			"RANK must be below GROUP_SIZE, got rank %d in a group of %d",
			c.Rank, c.GroupSize,
		)
	}
	return nil
}
