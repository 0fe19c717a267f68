package app

import (
	"fmt"
	"runtime/debug"
	"strings"

	"skillnet/hal"
)

// guard runs fn and turns a panic into an error after logging its stack.
func guard(l hal.Logger, fn func() error) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if l != nil {
			l.WriteLineString(fmt.Sprintf("skillnet panic: %v", r))
			for _, line := range strings.Split(string(debug.Stack()), "\n") {
				if line == "" {
					continue
				}
				l.WriteLineString(line)
			}
		}
		err = fmt.Errorf("panic: %v", r)
	}()
	return fn()
}
