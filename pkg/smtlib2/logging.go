package smtlib2

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("smt/smtlib2", "SMT-LIB2 backend")
