package main

import (
	"fmt"
	"strings"

	"github.com/ltick/tick-ini"
)

func parseErrorLevel(s string) (ini.ErrorLevel, error) {
	switch strings.ToLower(s) {
	case "any":
		return ini.StopOnAny, nil
	case "error":
		return ini.StopOnError, nil
	case "none":
		return ini.StopOnNone, nil
	default:
		return 0, fmt.Errorf("iniconf: unknown --stop-on value %q", s)
	}
}

func parseMSPolicy(s string) (ini.MSPolicy, error) {
	switch strings.ToLower(s) {
	case "error":
		return ini.MSError, nil
	case "preserve":
		return ini.MSPreserve, nil
	case "overwrite":
		return ini.MSOverwrite, nil
	case "detect":
		return ini.MSDetect, nil
	case "merge":
		return ini.MSMerge, nil
	default:
		return 0, fmt.Errorf("iniconf: unknown section collision policy %q", s)
	}
}

func parseValuePolicy(s string) (ini.ValuePolicy, error) {
	switch strings.ToLower(s) {
	case "error":
		return ini.PolicyError, nil
	case "preserve":
		return ini.PolicyPreserve, nil
	case "allow":
		return ini.PolicyAllow, nil
	case "overwrite":
		return ini.PolicyOverwrite, nil
	case "detect":
		return ini.PolicyDetect, nil
	default:
		return 0, fmt.Errorf("iniconf: unknown key collision policy %q", s)
	}
}
