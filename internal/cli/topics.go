package cli

import (
	"flag"
	"fmt"
	"io"

	"qbank/internal/question"
	"qbank/internal/store"
)

// runTopics builds the handler for the topics command.
func runTopics(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		bankPath := flags.String("bank", "", "Path to a bank document")
		if done, code := parseFlags(cmd, flags, args, stdout, stderr); done {
			return code
		}
		if *bankPath == "" {
			fmt.Fprintln(stderr, "--bank is required")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		bank, err := question.Load(*bankPath)
		if err != nil {
			fmt.Fprintf(stderr, "%s\n", err.Error())
			return ExitError
		}

		for _, topic := range store.Topics(bank) {
			matches := store.ByTopic(bank, topic)
			fmt.Fprintf(stdout, "%s\t%d question(s)\t%d point(s)\n",
				topic, len(matches), store.TotalPoints(question.Bank{Questions: matches}))
		}
		fmt.Fprintf(stdout, "total\t%d question(s)\t%d point(s)\n", bank.Len(), store.TotalPoints(bank))
		return ExitOK
	}
}
