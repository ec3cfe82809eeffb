package cli

import (
	"flag"
	"fmt"
	"io"

	"qbank/internal/config"
	"qbank/internal/question"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		configPath := flags.String("config", "", "Path to config file (default: .qbank.yml)")
		if done, code := parseFlags(cmd, flags, args, stdout, stderr); done {
			return code
		}

		path := resolveConfigPath(*configPath)
		cfg, err := config.Load(path)
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%s\n", err.Error())
			return ExitError
		}

		total := 0
		for _, bankCfg := range cfg.Banks {
			bank, err := question.Load(config.ResolvePath(configDir(path), bankCfg.Path))
			if err != nil {
				fmt.Fprintf(stderr, "Validation failed:\nbank %q: %s\n", bankCfg.Name, err.Error())
				return ExitError
			}
			total += bank.Len()
		}

		fmt.Fprintf(stdout, "Config OK: %d bank(s), %d question(s)\n", len(cfg.Banks), total)
		return ExitOK
	}
}
