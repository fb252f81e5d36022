package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"bibapi/internal/bib"
	"bibapi/internal/config"
	"bibapi/internal/platform/ils"
)

func newFetchCmd() *cobra.Command {
	var sortMethod, output string
	var verbose bool
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch the configured record set and print it sorted",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			printer, err := printerFor(output)
			if err != nil {
				return err
			}

			client := ils.NewClient(ils.Options{
				EndpointURL:   cfg.EndpointURL,
				APIKey:        cfg.APIKey,
				Format:        cfg.Format,
				Timeout:       cfg.Timeout,
				RPS:           cfg.RPS,
				MaxAttempts:   cfg.MaxAttempts,
				BackoffFactor: cfg.BackoffFactor,
			})
			fetcher := bib.NewFetcher(bib.NewILSClient(client), bib.FetcherConfig{
				Verbose:       verbose || cfg.Verbose,
				StrictPayload: cfg.StrictPayload,
			}).WithLogger(log.New(cmd.ErrOrStderr(), "", log.LstdFlags))

			records, err := bib.NewService(fetcher).List(cmd.Context(), bib.ParseSortMethod(sortMethod))
			if err != nil {
				return err
			}
			return printer(cmd.OutOrStdout(), records)
		},
	}
	cmd.Flags().StringVar(&sortMethod, "sort", string(bib.AscendingAlphabetical), "sort method: ascending_alphabetical, descending_alphabetical, ascending_publish_date, descending_publish_date")
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text, json or yaml")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "trace every request to stderr")
	return cmd
}

type printer func(w io.Writer, records []bib.Record) error

func printerFor(format string) (printer, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		return printText, nil
	case "json":
		return printJSON, nil
	case "yaml", "yml":
		return printYAML, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
	}
}

func printText(w io.Writer, records []bib.Record) error {
	divider := strings.Repeat("-", 20)
	for _, r := range records {
		if _, err := fmt.Fprintf(w, "%s\n%s\n", divider, r); err != nil {
			return err
		}
	}
	if len(records) > 0 {
		_, err := fmt.Fprintln(w, divider)
		return err
	}
	return nil
}

func printJSON(w io.Writer, records []bib.Record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

func printYAML(w io.Writer, records []bib.Record) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(records); err != nil {
		return err
	}
	return enc.Close()
}
