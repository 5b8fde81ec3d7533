package problem

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("smt/problem", "constraint problems")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
