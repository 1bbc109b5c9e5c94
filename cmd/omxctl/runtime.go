package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/yanqian/omx-assistant/internal/domain/faq"
	"github.com/yanqian/omx-assistant/internal/domain/language"
	"github.com/yanqian/omx-assistant/internal/infra/catalogsrc"
	"github.com/yanqian/omx-assistant/internal/infra/faqstore"
	"github.com/yanqian/omx-assistant/pkg/logger"
)

var (
	hindiColor    = color.New(color.FgYellow, color.Bold)
	englishColor  = color.New(color.FgCyan, color.Bold)
	speakerColor  = color.New(color.Bold)
	fallbackColor = color.New(color.FgRed)
)

func cliLogger(cmd *cobra.Command) *slog.Logger {
	level, _ := cmd.Flags().GetString("log-level")
	return logger.NewWithWriter(os.Stderr, level)
}

func catalogSource(cmd *cobra.Command) (faq.CatalogSource, error) {
	path, err := cmd.Flags().GetString("catalog")
	if err != nil {
		return nil, err
	}
	if path == "" {
		return catalogsrc.NewEmbeddedSource(), nil
	}
	return catalogsrc.NewFileSource(path)
}

func newFAQService(cmd *cobra.Command) (faq.Service, error) {
	source, err := catalogSource(cmd)
	if err != nil {
		return nil, err
	}
	threshold, err := cmd.Flags().GetFloat64("threshold")
	if err != nil {
		return nil, err
	}
	svc, err := faq.NewService(faq.Config{MatchThreshold: threshold, TopRecommendations: 10},
		source, faqstore.NewMemoryStore(), language.NewDetector(), cliLogger(cmd))
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return svc, nil
}

func languageBadge(tag language.Tag) string {
	if tag == language.Hindi {
		return hindiColor.Sprintf("[%s]", tag.Label())
	}
	return englishColor.Sprintf("[%s]", tag.Label())
}
