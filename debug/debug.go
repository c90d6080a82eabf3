package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Merge   bool
	Clone   bool
	Version bool
	State   bool
	Route   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Merge = boolEnv("UU_DEBUG_MERGE")
	d.Clone = boolEnv("UU_DEBUG_CLONE")
	d.Version = boolEnv("UU_DEBUG_VERSION")
	d.State = boolEnv("UU_DEBUG_STATE")
	d.Route = boolEnv("UU_DEBUG_ROUTE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Merge() bool {
	return d.Merge
}
func Clone() bool {
	return d.Clone
}
func Version() bool {
	return d.Version
}
func State() bool {
	return d.State
}
func Route() bool {
	return d.Route
}
