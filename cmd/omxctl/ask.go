package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yanqian/omx-assistant/internal/domain/faq"
	"github.com/yanqian/omx-assistant/internal/domain/language"
)

func newAskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask [question...]",
		Short: "Answer a single question against the catalog",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newFAQService(cmd)
			if err != nil {
				return err
			}
			question := strings.Join(args, " ")

			var resp faq.Response
			if raw, _ := cmd.Flags().GetString("lang"); raw != "" {
				tag, ok := language.Parse(raw)
				if !ok {
					return fmt.Errorf("unsupported language %q", raw)
				}
				resp = svc.Resolve(cmd.Context(), question, tag)
			} else {
				resp = svc.Answer(cmd.Context(), faq.Request{Question: question})
			}

			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(resp)
			}
			return printResponse(cmd, resp)
		},
	}
	cmd.Flags().String("lang", "", "question language (en|hi); detected when empty")
	cmd.Flags().Bool("json", false, "print the full response as JSON")
	return cmd
}

func printResponse(cmd *cobra.Command, resp faq.Response) error {
	out := cmd.OutOrStdout()
	answer := resp.Answer
	if !resp.Found {
		answer = fallbackColor.Sprint(answer)
	}
	_, err := fmt.Fprintf(out, "%s %s\n", languageBadge(resp.AnswerLanguage), answer)
	if err != nil {
		return err
	}
	if resp.Found {
		_, err = fmt.Fprintf(out, "  matched %q (%s) score=%.2f\n", resp.MatchedQuestion, resp.MatchedID, resp.Score)
	}
	return err
}
