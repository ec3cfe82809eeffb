package cli

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"io"

	_ "github.com/duckdb/duckdb-go/v2"

	"qbank/internal/config"
	"qbank/internal/duckdb"
	"qbank/internal/question"
)

// runIngest builds the handler for the ingest command.
func runIngest(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		configPath := flags.String("config", "", "Path to config file (default: .qbank.yml)")
		if done, code := parseFlags(cmd, flags, args, stdout, stderr); done {
			return code
		}

		path := resolveConfigPath(*configPath)
		cfg, err := config.Load(path)
		if err != nil {
			fmt.Fprintf(stderr, "%s\n", err.Error())
			return ExitError
		}
		if cfg.Database.Path == "" {
			fmt.Fprintln(stderr, "database.path is not configured")
			return ExitError
		}

		db, err := sql.Open("duckdb", config.ResolvePath(configDir(path), cfg.Database.Path))
		if err != nil {
			fmt.Fprintf(stderr, "open database: %s\n", err.Error())
			return ExitError
		}
		defer db.Close()
		if err := duckdb.EnsureSchema(db); err != nil {
			fmt.Fprintf(stderr, "apply schema: %s\n", err.Error())
			return ExitError
		}

		ctx := context.Background()
		for _, bankCfg := range cfg.Banks {
			bank, err := question.Load(config.ResolvePath(configDir(path), bankCfg.Path))
			if err != nil {
				fmt.Fprintf(stderr, "bank %q: %s\n", bankCfg.Name, err.Error())
				return ExitError
			}
			bank = question.RemapTopics(bank, cfg.Topics.Aliases)
			bankID, err := duckdb.IngestBank(ctx, db, bankCfg.Name, bank)
			if err != nil {
				fmt.Fprintf(stderr, "ingest %q: %s\n", bankCfg.Name, err.Error())
				return ExitError
			}
			fmt.Fprintf(stdout, "Ingested %q: %d question(s) (bank %s)\n", bankCfg.Name, bank.Len(), bankID)
		}
		return ExitOK
	}
}
