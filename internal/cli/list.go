package cli

import (
	"flag"
	"fmt"
	"io"

	"qbank/internal/question"
	"qbank/internal/store"
)

// runList builds the handler for the list command.
func runList(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		bankPath := flags.String("bank", "", "Path to a bank document")
		topic := flags.String("topic", "", "Only questions with this topic")
		points := flags.Int("points", -1, "Only questions worth exactly this many points")
		minPoints := flags.Int("min", -1, "Lower bound for a point range")
		maxPoints := flags.Int("max", -1, "Upper bound for a point range")
		if done, code := parseFlags(cmd, flags, args, stdout, stderr); done {
			return code
		}
		if *bankPath == "" {
			fmt.Fprintln(stderr, "--bank is required")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if (*minPoints >= 0) != (*maxPoints >= 0) {
			fmt.Fprintln(stderr, "--min and --max must be used together")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		bank, err := question.Load(*bankPath)
		if err != nil {
			fmt.Fprintf(stderr, "%s\n", err.Error())
			return ExitError
		}

		questions := bank.Questions
		if *topic != "" {
			questions = store.ByTopic(bank, *topic)
		}
		if *points >= 0 {
			questions = store.ByPoints(question.Bank{Questions: questions}, *points)
		}
		if *minPoints >= 0 {
			questions = store.ByPointRange(question.Bank{Questions: questions}, *minPoints, *maxPoints)
		}

		for _, q := range questions {
			fmt.Fprintf(stdout, "%d\t%s\t[%d]\t%s\n", q.ID, q.Topic, q.Points, q.Body)
		}
		return ExitOK
	}
}
