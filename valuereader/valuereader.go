// Package valuereader provides typed scalar accessors over a parsed
// *ini.Config. It is the explicit home for the "typed value-reader
// helpers" the parser itself deliberately leaves as an external
// collaborator's concern: the core ini package only ever hands back raw
// Value fragments.
//
// The bool recognition table below is grounded on the teacher repo's
// resolve.go, which carried the same yes/no/on/off/y/n vocabulary for
// YAML scalar tag resolution; it is narrowed here to the scalar kinds an
// INI value reader actually needs: strings, bools (this table), integers
// (strconv) and durations (time.ParseDuration).
package valuereader

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ltick/tick-ini"
)

var boolValues = map[string]bool{
	"y": true, "yes": true, "on": true, "true": true, "1": true,
	"n": false, "no": false, "off": false, "false": false, "0": false,
}

// String returns key's first value in section, or def if absent.
func String(cfg *ini.Config, section, key, def string) string {
	sec, ok := cfg.Section(section)
	if !ok {
		return def
	}
	v, ok := sec.Get(key)
	if !ok {
		return def
	}
	return v.Raw()
}

// Int parses key's value as a base-10 integer.
func Int(cfg *ini.Config, section, key string, def int) (int, error) {
	raw := String(cfg, section, key, "")
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return def, fmt.Errorf("valuereader: %s.%s: %w", section, key, err)
	}
	return n, nil
}

// Bool parses key's value against the yes/no/on/off/true/false/1/0
// vocabulary, case-insensitively.
func Bool(cfg *ini.Config, section, key string, def bool) (bool, error) {
	raw := strings.ToLower(strings.TrimSpace(String(cfg, section, key, "")))
	if raw == "" {
		return def, nil
	}
	b, ok := boolValues[raw]
	if !ok {
		return def, fmt.Errorf("valuereader: %s.%s: %q is not a recognized boolean", section, key, raw)
	}
	return b, nil
}

// Duration parses key's value with time.ParseDuration.
func Duration(cfg *ini.Config, section, key string, def time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(String(cfg, section, key, ""))
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return def, fmt.Errorf("valuereader: %s.%s: %w", section, key, err)
	}
	return d, nil
}
