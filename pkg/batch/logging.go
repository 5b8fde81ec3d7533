package batch

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("smt/batch", "concurrent problem solving")
