// Package check holds assertions for conditions that can only fail on a programming error.
package check

import "fmt"

func PanicIfErr(err error) {
	if err != nil {
		panic(err)
	}
}

func PanicIfNot(flag bool) {
	if !flag {
		panic("requirement not met")
	}
}

func PanicIfNotf(flag bool, format string, args ...any) {
	if !flag {
		panic(fmt.Sprintf(format, args...))
	}
}
