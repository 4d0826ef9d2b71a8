package debug

import (
	"os"
	"strconv"
)

// debug holds the ACCESSOR_DEBUG_* switches, read once at startup.
type debug struct {
	Extract bool
	Collect bool
	Emit    bool
	Resolve bool
}

var d *debug

func init() {
	d = &debug{}
	d.Extract = boolEnv("ACCESSOR_DEBUG_EXTRACT")
	d.Collect = boolEnv("ACCESSOR_DEBUG_COLLECT")
	d.Emit = boolEnv("ACCESSOR_DEBUG_EMIT")
	d.Resolve = boolEnv("ACCESSOR_DEBUG_RESOLVE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Extract() bool {
	return d.Extract
}
func Collect() bool {
	return d.Collect
}
func Emit() bool {
	return d.Emit
}
func Resolve() bool {
	return d.Resolve
}
