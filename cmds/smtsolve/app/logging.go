package app

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("smt/smtsolve", "solver command")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
