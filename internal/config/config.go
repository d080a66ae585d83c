package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	_ "embed"
)

var (
	ErrUnknownAdapter = errors.New("unknown adapter")
	ErrUnknownBackend = errors.New("unknown backend")
	ErrBadScenario    = errors.New("bad scenario")
)

const (
	AdapterStack = "stack"
	AdapterQueue = "queue"
)

const (
	BackendVector = "vector"
	BackendDeque  = "deque"
	BackendList   = "list"
)

//go:embed default.yaml
var defaultConfig []byte

// Load reads a benchmark configuration from path, or the embedded default
// when path is empty.
func Load(path string) (Config, error) {
	marshaled := defaultConfig

	if path != "" {
		var err error

		marshaled, err = os.ReadFile(path)
		if err != nil {
			return Config{}, err
		}
	}

	var ret Config
	if err := yaml.Unmarshal(marshaled, &ret); err != nil {
		return Config{}, err
	}

	if err := ret.validate(); err != nil {
		return Config{}, err
	}

	return ret, nil
}

type Config struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Scenario describes one benchmark run: an adapter over a backend, driven
// for Ops push/pop rounds.
type Scenario struct {
	Name    string `yaml:"name"`
	Adapter string `yaml:"adapter"`
	Backend string `yaml:"backend"`
	Ops     int    `yaml:"ops"`
}

func (c Config) validate() error {
	for _, s := range c.Scenarios {
		switch s.Adapter {
		case AdapterStack, AdapterQueue:
		default:
			return fmt.Errorf("%w: %q in scenario %q", ErrUnknownAdapter, s.Adapter, s.Name)
		}

		switch s.Backend {
		case BackendVector, BackendDeque, BackendList:
		default:
			return fmt.Errorf("%w: %q in scenario %q", ErrUnknownBackend, s.Backend, s.Name)
		}

		if s.Adapter == AdapterQueue && s.Backend == BackendVector {
			return fmt.Errorf("%w: %q needs a double-ended backend, vector only pops at the back", ErrBadScenario, s.Name)
		}

		if s.Ops <= 0 {
			return fmt.Errorf("%w: %q has no operations to run", ErrBadScenario, s.Name)
		}
	}

	return nil
}
