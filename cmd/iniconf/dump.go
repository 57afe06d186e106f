package main

import (
	"encoding/json"
	"fmt"
	"strings"

	goyaml "github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/ltick/tick-ini"
)

type dumpEntry struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

type dumpSection struct {
	Name    string      `json:"name" yaml:"name"`
	Entries []dumpEntry `json:"entries" yaml:"entries"`
}

func runDump(cmd *cobra.Command, args []string) error {
	path := args[0]
	level, collision, flags, err := buildOptions()
	if err != nil {
		return err
	}

	cfg, perr := ini.ParseFile(path, level, collision, flags)
	if cfg == nil {
		return perr
	}

	switch strings.ToLower(flagFormat) {
	case "json":
		out, err := json.MarshalIndent(toDumpSections(cfg), "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	case "yaml":
		out, err := goyaml.Marshal(toDumpSections(cfg))
		if err != nil {
			return err
		}
		fmt.Print(string(out))
	case "ini":
		fmt.Print(rewrapINI(cfg))
	default:
		return fmt.Errorf("iniconf: unknown --format value %q", flagFormat)
	}

	return perr
}

func toDumpSections(cfg *ini.Config) []dumpSection {
	sections := cfg.Sections()
	out := make([]dumpSection, len(sections))
	for i, sec := range sections {
		entries := make([]dumpEntry, sec.Len())
		for j, v := range sec.Entries() {
			entries[j] = dumpEntry{Key: v.KeyName, Value: v.Raw()}
		}
		out[i] = dumpSection{Name: sec.Name, Entries: entries}
	}
	return out
}

// rewrapINI re-emits the config in INI form, folding any value whose
// WrapBoundary hint says it was originally split across lines. This is
// not a byte-exact round-trip of the source text, only of its recorded
// boundary column, consistent with the parser's own non-goal of
// preserving comment placement exactly.
func rewrapINI(cfg *ini.Config) string {
	var b strings.Builder
	for _, sec := range cfg.Sections() {
		fmt.Fprintf(&b, "[%s]\n", sec.Name)
		for _, v := range sec.Entries() {
			raw := v.Raw()
			if v.WrapBoundary > 0 && len(raw) > v.WrapBoundary {
				fmt.Fprintf(&b, "%s = %s\n", v.KeyName, raw[:v.WrapBoundary])
				fmt.Fprintf(&b, " %s\n", raw[v.WrapBoundary:])
				continue
			}
			fmt.Fprintf(&b, "%s = %s\n", v.KeyName, raw)
		}
	}
	return b.String()
}
