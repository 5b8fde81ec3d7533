package proc

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("smt/proc", "solver process communication")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
