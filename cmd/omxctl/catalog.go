package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yanqian/omx-assistant/internal/domain/faq"
	"github.com/yanqian/omx-assistant/internal/domain/language"
	"github.com/yanqian/omx-assistant/internal/infra/catalogsrc"
)

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect and convert FAQ catalogs",
	}
	cmd.AddCommand(newCatalogValidateCmd())
	cmd.AddCommand(newCatalogExportCmd())
	cmd.AddCommand(newCatalogPublishCmd())
	return cmd
}

func newCatalogValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate file",
		Short: "Check that a catalog file loads and every entry is well formed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := catalogsrc.NewFileSource(args[0])
			if err != nil {
				return err
			}
			entries, err := source.Load(cmd.Context())
			if err != nil {
				return err
			}
			catalog, err := faq.NewCatalog(entries)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			detector := language.NewDetector()
			counts := map[language.Tag]int{}
			for _, entry := range catalog.Entries() {
				counts[detector.Detect(entry.Question)]++
				if faq.Normalize(entry.Question) != entry.Question {
					fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s question %q is not normalized\n", entry.ID, entry.Question)
				}
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: %d entries (%d English, %d Hindi)\n",
				args[0], catalog.Len(), counts[language.English], counts[language.Hindi])
			return err
		},
	}
}

func newCatalogExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the active catalog in another format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			source, err := catalogSource(cmd)
			if err != nil {
				return err
			}
			entries, err := source.Load(cmd.Context())
			if err != nil {
				return err
			}
			format, _ := cmd.Flags().GetString("format")
			data, err := catalogsrc.Encode(entries, catalogsrc.Format(format))
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().String("format", string(catalogsrc.FormatYAML), "output format (yaml|json|toml)")
	return cmd
}

func newCatalogPublishCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publish file",
		Short: "Validate a catalog file and upload it to object storage",
		Long:  `Connection settings default to the FAQ_OBJECT_* environment variables used by the server.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := catalogsrc.NewFileSource(args[0])
			if err != nil {
				return err
			}
			entries, err := source.Load(cmd.Context())
			if err != nil {
				return err
			}
			catalog, err := faq.NewCatalog(entries)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			cfg := objectConfigFromFlags(cmd)
			if cfg.Endpoint == "" || cfg.Bucket == "" || cfg.Key == "" {
				return fmt.Errorf("object endpoint, bucket and key are required")
			}
			target, err := catalogsrc.NewObjectSource(cfg, cliLogger(cmd))
			if err != nil {
				return err
			}
			if err := target.Publish(cmd.Context(), catalog.Entries()); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "published %d entries to %s\n", catalog.Len(), target.Name())
			return err
		},
	}
	cmd.Flags().String("endpoint", os.Getenv("FAQ_OBJECT_ENDPOINT"), "object storage endpoint")
	cmd.Flags().String("bucket", os.Getenv("FAQ_OBJECT_BUCKET"), "bucket holding the catalog")
	cmd.Flags().String("key", os.Getenv("FAQ_OBJECT_KEY"), "object key; its extension selects the format")
	cmd.Flags().String("region", os.Getenv("FAQ_OBJECT_REGION"), "bucket region")
	return cmd
}

func objectConfigFromFlags(cmd *cobra.Command) catalogsrc.ObjectConfig {
	endpoint, _ := cmd.Flags().GetString("endpoint")
	bucket, _ := cmd.Flags().GetString("bucket")
	key, _ := cmd.Flags().GetString("key")
	region, _ := cmd.Flags().GetString("region")
	return catalogsrc.ObjectConfig{
		Endpoint:  endpoint,
		AccessKey: os.Getenv("FAQ_OBJECT_ACCESS_KEY"),
		SecretKey: os.Getenv("FAQ_OBJECT_SECRET_KEY"),
		Bucket:    bucket,
		Region:    region,
		Key:       key,
	}
}
