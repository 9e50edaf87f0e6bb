package rs63

import (
	"fmt"
	"runtime"
	"strings"
)

// Because sometimes it's really convenient to have C's ternary ?:
func IfThenElse[T any](x bool, a T, b T) T { //nolint:ireturn
	if x {
		return a
	} else {
		return b
	}
}

// Can't be "assert" because of conflicts with stretchr/testify/assert, but otherwise, it's compatible enough
func Assert(t bool) {
	if !t {
		_, file, line, _ := runtime.Caller(1)
		panic(fmt.Sprintf("Assertion failed at %s:%d", file, line))
	}
}

// Comma separated decimal, "1, 2, 3"
func symbolList(p []byte) string {
	var s = make([]string, len(p))
	for i, b := range p {
		s[i] = fmt.Sprint(b)
	}

	return strings.Join(s, ", ")
}
