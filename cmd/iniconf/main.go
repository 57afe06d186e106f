// Command iniconf lints and dumps INI configuration files, exercising
// the ini package's diagnostic output and Config tree from the command
// line, in the cobra/pflag/logrus style that distribution's
// registry/root.go RootCmd lays out.
package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ltick/tick-ini"
)

var logger = log.New()

var (
	flagStopOn    string
	flagMS        string
	flagMV1S      string
	flagMV2S      string
	flagNoWrap    bool
	flagNoSpace   bool
	flagNoTab     bool
	flagNoCStyle  bool
	flagFormat    string
)

func main() {
	root := &cobra.Command{
		Use:   "iniconf",
		Short: "Lint and dump INI configuration files",
	}

	lint := &cobra.Command{
		Use:   "lint [file]",
		Short: "Parse a file and print its diagnostics",
		Args:  cobra.ExactArgs(1),
		RunE:  runLint,
	}
	dump := &cobra.Command{
		Use:   "dump [file]",
		Short: "Parse a file and re-emit it as JSON, YAML, or INI",
		Args:  cobra.ExactArgs(1),
		RunE:  runDump,
	}
	dump.Flags().StringVar(&flagFormat, "format", "json", "output format: json, yaml, or ini")

	for _, cmd := range []*cobra.Command{lint, dump} {
		cmd.Flags().StringVar(&flagStopOn, "stop-on", "error", "error, any, or none")
		cmd.Flags().StringVar(&flagMS, "ms", "merge", "section collision policy: error, preserve, overwrite, detect, merge")
		cmd.Flags().StringVar(&flagMV1S, "mv1s", "error", "key collision policy: error, preserve, allow, overwrite, detect")
		cmd.Flags().StringVar(&flagMV2S, "mv2s", "error", "key-collision-during-merge policy, same vocabulary as --mv1s")
		cmd.Flags().BoolVar(&flagNoWrap, "no-wrap", false, "disable line folding")
		cmd.Flags().BoolVar(&flagNoSpace, "no-space", false, "with --no-wrap, reject lines that begin with a space")
		cmd.Flags().BoolVar(&flagNoTab, "no-tab", false, "with --no-wrap, reject lines that begin with a tab")
		cmd.Flags().BoolVar(&flagNoCStyle, "no-c-comments", false, "disable '//' and '/* */' comments")
	}

	root.AddCommand(lint, dump)

	if err := root.Execute(); err != nil {
		logger.WithError(err).Error("iniconf failed")
		os.Exit(1)
	}
}

func buildOptions() (ini.ErrorLevel, ini.CollisionFlags, ini.ParseFlags, error) {
	level, err := parseErrorLevel(flagStopOn)
	if err != nil {
		return 0, ini.CollisionFlags{}, 0, err
	}

	ms, err := parseMSPolicy(flagMS)
	if err != nil {
		return 0, ini.CollisionFlags{}, 0, err
	}
	mv1s, err := parseValuePolicy(flagMV1S)
	if err != nil {
		return 0, ini.CollisionFlags{}, 0, err
	}
	mv2s, err := parseValuePolicy(flagMV2S)
	if err != nil {
		return 0, ini.CollisionFlags{}, 0, err
	}

	var flags ini.ParseFlags
	if flagNoWrap {
		flags |= ini.NoWrap
	}
	if flagNoSpace {
		flags |= ini.NoSpace
	}
	if flagNoTab {
		flags |= ini.NoTab
	}
	if flagNoCStyle {
		flags |= ini.NoCComments
	}

	return level, ini.CollisionFlags{MS: ms, MV1S: mv1s, MV2S: mv2s}, flags, nil
}

func runLint(cmd *cobra.Command, args []string) error {
	path := args[0]
	level, collision, flags, err := buildOptions()
	if err != nil {
		return err
	}

	cfg, perr := ini.ParseFile(path, level, collision, flags)
	if cfg == nil {
		return perr
	}

	for _, d := range cfg.Diagnostics {
		fmt.Printf("%s:%d: %s: %s\n", path, d.Line, d.Severity, d.Code)
	}
	logger.WithField("file", path).WithField("diagnostics", len(cfg.Diagnostics)).Info("lint complete")

	if perr != nil {
		return perr
	}
	return nil
}
