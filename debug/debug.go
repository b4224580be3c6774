package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse     bool
	Encode    bool
	Transform bool
	File      bool
	Query     bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("HIPPO_DEBUG_PARSE")
	d.Encode = boolEnv("HIPPO_DEBUG_ENCODE")
	d.Transform = boolEnv("HIPPO_DEBUG_TRANSFORM")
	d.File = boolEnv("HIPPO_DEBUG_FILE")
	d.Query = boolEnv("HIPPO_DEBUG_QUERY")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Encode() bool {
	return d.Encode
}
func Transform() bool {
	return d.Transform
}
func File() bool {
	return d.File
}
func Query() bool {
	return d.Query
}
