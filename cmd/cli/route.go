package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"customer-support/internal/conversation"
)

func runRoute(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	a, err := boot(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	printExplain(cmd.OutOrStdout(), a.UseCase.Explain(ctx, strings.Join(args, " ")))
	return nil
}

func printExplain(out io.Writer, e conversation.ExplainOutput) {
	fmt.Fprintf(out, "Tokens:   %s\n", strings.Join(e.Message.Tokens, " "))
	if ids := e.Message.Entities[conversation.EntityOrderID]; len(ids) > 0 {
		fmt.Fprintf(out, "Order ID: %s\n", strings.Join(ids, ", "))
	}
	fmt.Fprintln(out)

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "AGENT\tRANK\tSCORE\tELIGIBLE")
	for _, s := range e.Scores {
		mark := ""
		if s.ResponderID == e.Winner {
			mark = " *"
		}
		fmt.Fprintf(tw, "%s%s\t%d\t%.3f\t%t\n", s.ResponderID, mark, s.PriorityRank, s.Score, s.Eligible)
	}
	tw.Flush()

	fmt.Fprintf(out, "\n%s\n", e.Reasoning)
}
