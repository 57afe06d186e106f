// Package ini implements a streaming, line-oriented parser for the INI
// configuration file dialect of ding-libs' ini_parse.c: line folding,
// ';'/'#'/"//" comments plus "/* ... */" blocks, and policy-driven
// collision handling for duplicate sections and keys.
//
// The entry point is Parse, which drives the READ/INSPECT/POST/ERROR/DONE
// action loop over an io.Reader and returns a Config tree plus an error
// classifying the overall outcome (nil, ErrStopped, ErrWarnings, or
// ErrDuplicateDetected, tested with errors.Is). ParseString and ParseFile
// are thin convenience wrappers over the two input shapes the original
// apic.go offered (a string reader / an *os.File reader).
package ini

import (
	"strings"

	"github.com/ltick/tick-ini/source"
)

// ParseString parses an in-memory INI document using the default
// collision policy (DefaultCollisionFlags), no parse flags, and the given
// error level.
func ParseString(s string, level ErrorLevel) (*Config, error) {
	return Parse(strings.NewReader(s), "<string>", level, DefaultCollisionFlags(), 0)
}

// ParseFile parses the file at path. Opening the file itself is
// source.File's job, not the parser's (spec §1 excludes file discovery
// from this package's scope); ParseFile only adds the convenience of not
// having to call source.File separately for the common single-file case.
func ParseFile(path string, level ErrorLevel, collision CollisionFlags, flags ParseFlags) (*Config, error) {
	rc, err := source.File(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return Parse(rc, path, level, collision, flags)
}
