package app

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/mandelsoft/vfs/pkg/vfs"
	"sigs.k8s.io/yaml"

	"github.com/mandelsoft/smt/pkg/utils"
)

const ConfigFile = ".smtsolve"

const (
	DefaultSolver = "z3"
)

var DefaultArgs = []string{"-in"}

type Config struct {
	Solver  *string  `json:"solver,omitempty"`
	Args    []string `json:"args,omitempty"`
	Framing *string  `json:"framing,omitempty"`
}

// GetConfig merges the config files found in the home directory, the
// user config directory and the current directory. The environment
// variables SMT_SOLVER and SMT_SOLVER_ARGS override the file settings.
func GetConfig(fs vfs.FileSystem, getenv func(string) string) *Config {
	var cfg Config

	dir, err := os.UserHomeDir()
	if err == nil {
		MergeConfig(&cfg, ReadConfig(fs, filepath.Join(dir, ConfigFile)))
	}
	dir, err = os.UserConfigDir()
	if err == nil {
		MergeConfig(&cfg, ReadConfig(fs, filepath.Join(dir, ConfigFile)))
	}
	MergeConfig(&cfg, ReadConfig(fs, ConfigFile))

	if v := getenv("SMT_SOLVER"); v != "" {
		cfg.Solver = utils.Pointer(v)
	}
	if v := getenv("SMT_SOLVER_ARGS"); v != "" {
		cfg.Args = strings.Fields(v)
	}
	if cfg.Solver == nil || *cfg.Solver == "" {
		cfg.Solver = utils.Pointer(DefaultSolver)
		if cfg.Args == nil {
			cfg.Args = DefaultArgs
		}
	}
	return &cfg
}

func ReadConfig(fs vfs.FileSystem, path string) *Config {
	data, err := vfs.ReadFile(fs, path)
	if err != nil {
		return nil
	}

	var cfg Config
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		log.Warn("ignoring invalid config file {{path}}: {{error}}", "path", path, "error", err)
		return nil
	}
	log.Debug("using config file {{path}}", "path", path)
	return &cfg
}

func MergeConfig(cfg *Config, add *Config) {
	if add == nil {
		return
	}
	if add.Solver != nil {
		cfg.Solver = add.Solver
	}
	if add.Args != nil {
		cfg.Args = add.Args
	}
	if add.Framing != nil {
		cfg.Framing = add.Framing
	}
}
