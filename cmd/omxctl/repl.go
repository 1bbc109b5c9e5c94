package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yanqian/omx-assistant/internal/domain/conversation"
	"github.com/yanqian/omx-assistant/internal/infra/sessionstore"
)

const replHelp = `commands: :history  :suggest  :reset  :quit`

func newReplCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Hold an interactive conversation with the assistant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			faqSvc, err := newFAQService(cmd)
			if err != nil {
				return err
			}
			historyLimit, _ := cmd.Flags().GetInt("history")
			convSvc, err := conversation.NewService(conversation.Config{Debounce: conversation.NoDebounce, HistoryLimit: historyLimit},
				faqSvc, sessionstore.NewMemoryStore(), cliLogger(cmd))
			if err != nil {
				return err
			}
			return runRepl(cmd, convSvc, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	cmd.Flags().Int("history", conversation.DefaultHistoryLimit, "number of turns kept in the session")
	return cmd
}

func runRepl(cmd *cobra.Command, svc conversation.Service, in io.Reader, out io.Writer) error {
	ctx := cmd.Context()
	session, err := svc.Create(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, replHelp)

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
		case ":quit", ":q":
			return nil
		case ":history":
			current, err := svc.History(ctx, session.ID)
			if err != nil {
				return err
			}
			printTurns(out, current.Turns)
			continue
		case ":suggest":
			suggestions := svc.Suggestions()
			for _, q := range suggestions.English {
				fmt.Fprintf(out, "  %s %s\n", englishColor.Sprint("[English]"), q)
			}
			for _, q := range suggestions.Hindi {
				fmt.Fprintf(out, "  %s %s\n", hindiColor.Sprint("[Hindi]"), q)
			}
			continue
		case ":reset":
			if err := svc.Reset(ctx, session.ID); err != nil {
				return err
			}
			if session, err = svc.Create(ctx); err != nil {
				return err
			}
			fmt.Fprintln(out, "session cleared")
			continue
		}

		resp, err := svc.Ask(ctx, session.ID, conversation.AskRequest{Question: line})
		if err != nil {
			fmt.Fprintln(out, fallbackColor.Sprint(err.Error()))
			continue
		}
		if resp.Skipped {
			fmt.Fprintln(out, "(skipped: asked too quickly)")
			continue
		}
		printTurns(out, resp.Turns)
	}
}

func printTurns(out io.Writer, turns []conversation.Turn) {
	for _, turn := range turns {
		fmt.Fprintf(out, "%s %s %s\n", speakerColor.Sprintf("%s:", turn.Speaker), languageBadge(turn.Language), turn.Text)
	}
}
