// Package debug controls diagnostic tracing with environment variables.
//
//	RT_DEBUG_EDIT      tree edits and rebuilt ancestor paths
//	RT_DEBUG_REGISTRY  property registrations and interned names
//	RT_DEBUG_DECODE    wire decoding
//	RT_DEBUG_RENDER    markup rendering
//	RT_DEBUG_EVAL      expression evaluation
//
// Each variable is read once, at package initialisation, and parsed with
// strconv.ParseBool.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Edit     bool
	Registry bool
	Decode   bool
	Render   bool
	Eval     bool
}

var d *debug

func init() {
	d = &debug{}
	d.Edit = boolEnv("RT_DEBUG_EDIT")
	d.Registry = boolEnv("RT_DEBUG_REGISTRY")
	d.Decode = boolEnv("RT_DEBUG_DECODE")
	d.Render = boolEnv("RT_DEBUG_RENDER")
	d.Eval = boolEnv("RT_DEBUG_EVAL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Edit() bool {
	return d.Edit
}
func Registry() bool {
	return d.Registry
}
func Decode() bool {
	return d.Decode
}
func Render() bool {
	return d.Render
}
func Eval() bool {
	return d.Eval
}
