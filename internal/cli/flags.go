package cli

import (
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"qbank/internal/config"
)

// parseFlags applies the shared flag handling for a command. The returned
// exit code is meaningful only when done is true.
func parseFlags(cmd *Command, flags *flag.FlagSet, args []string, stdout, stderr io.Writer) (done bool, code int) {
	if wantsHelp(args) {
		printCommandUsage(cmd, stdout)
		return true, ExitOK
	}
	flags.SetOutput(stderr)
	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			printCommandUsage(cmd, stdout)
			return true, ExitOK
		}
		fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
		printCommandUsage(cmd, stderr)
		return true, ExitUsage
	}
	if flags.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
		printCommandUsage(cmd, stderr)
		return true, ExitUsage
	}
	return false, ExitOK
}

// configDir returns the directory bank paths are resolved against.
func configDir(configPath string) string {
	return filepath.Dir(configPath)
}

// resolveConfigPath falls back to the default config file name.
func resolveConfigPath(path string) string {
	if strings.TrimSpace(path) == "" {
		return config.DefaultPath
	}
	return path
}
