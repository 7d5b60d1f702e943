package utils

import (
	"flag"
	"fmt"
	"strings"
)

type options struct {
	noColorize bool
}

var opts = &options{}

func init() {
	flag.BoolVar(&opts.noColorize, "no-colorize", false,
		"Disable colorization of analysis output")
}

type optInterface struct{}

// Opts exposes the analysis options.
func Opts() optInterface {
	return optInterface{}
}

func (optInterface) NoColorize() bool {
	return opts.noColorize
}

// CanColorize gates a color function behind the no-colorize option.
func CanColorize(col func(...interface{}) string) func(...interface{}) string {
	if opts.noColorize {
		return func(is ...interface{}) string {
			return fmt.Sprintf(strings.Repeat("%s", len(is)), is...)
		}
	}
	return col
}
