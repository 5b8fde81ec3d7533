package main

import (
	"os"

	"github.com/mandelsoft/logging"
	"github.com/mandelsoft/logging/logrusl"
	"github.com/mandelsoft/logging/logrusr"
)

// LogLevelEnv names the environment variable providing the log level
// used if the --log-level option is not given.
const LogLevelEnv = "SMT_LOG_LEVEL"

func init() {
	logcfg := logrusl.Human(true)
	lctx := logging.DefaultContext()
	lctx.SetBaseLogger(logrusr.New(logcfg.NewLogrus()))
	lctx.AddRule(logging.NewConditionRule(defaultLevel(os.Getenv), logging.NewRealmPrefix("smt")))
}

func defaultLevel(getenv func(string) string) int {
	if name := getenv(LogLevelEnv); name != "" {
		if l, err := logging.ParseLevel(name); err == nil {
			return l
		}
	}
	return logging.WarnLevel
}
