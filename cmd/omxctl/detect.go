package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yanqian/omx-assistant/internal/domain/language"
)

func newDetectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect [text...]",
		Short: "Classify text as English or Hindi",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			tag := language.NewDetector().Detect(text)
			short, _ := cmd.Flags().GetBool("short")
			if short {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), tag)
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", languageBadge(tag), text)
			return err
		},
	}
	cmd.Flags().Bool("short", false, "print only the language tag")
	return cmd
}
