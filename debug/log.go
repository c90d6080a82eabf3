package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/signadot/uniutil/encode"
	"github.com/signadot/uniutil/ir"

	"github.com/charmbracelet/log"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "uu",
	Level:  log.DebugLevel,
})

// Logger returns the logger used by Logf, for structured key/value output.
func Logger() *log.Logger {
	return logger
}

// Logf logs a debug message.  *ir.Node, map and slice arguments are
// rendered as compact JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.Marshal(a)
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Node:
			s, err := encode.String(x)
			if err != nil {
				args[i] = fmt.Sprintf("[raw *ir.Node] %v", x)
				continue
			}
			args[i] = s
		default:
		}
	}
	logger.Debug(strings.TrimSuffix(fmt.Sprintf(msg, args...), "\n"))
}
