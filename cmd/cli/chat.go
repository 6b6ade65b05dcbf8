package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"customer-support/internal/conversation"
)

// REPL commands.
const (
	cmdQuit  = "/quit"
	cmdExit  = "/exit"
	cmdClear = "/clear"
)

func runChat(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	a, err := boot(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	return chatLoop(ctx, a.UseCase, sessionID, cmd.InOrStdin(), cmd.OutOrStdout())
}

// chatLoop reads one message per line until EOF or /quit.
func chatLoop(ctx context.Context, uc conversation.UseCase, session string, in io.Reader, out io.Writer) error {
	fmt.Fprintf(out, "Customer support (session %s). Type %s to leave, %s to start over.\n", session, cmdQuit, cmdClear)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case cmdQuit, cmdExit:
			return nil
		case cmdClear:
			if err := uc.ClearConversation(ctx, session); err != nil {
				fmt.Fprintf(out, "nothing to clear: %v\n", err)
				continue
			}
			fmt.Fprintln(out, "Conversation cleared.")
			continue
		}

		printReply(out, uc.HandleTurn(ctx, session, line))
	}
}

func printReply(out io.Writer, r conversation.Reply) {
	fmt.Fprintf(out, "[%s · %s]\n%s\n", r.RespondingAgentID, r.Route, r.Text)
	if r.TransactionID != "" {
		fmt.Fprintf(out, "Transaction: %s\n", r.TransactionID)
	}
	for _, s := range r.Suggestions {
		fmt.Fprintf(out, "  - %s\n", s)
	}
}
