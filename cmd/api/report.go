package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	domainEntry "github.com/BruksfildServices01/ojt-tracker/internal/domain/entry"
	infraRepo "github.com/BruksfildServices01/ojt-tracker/internal/infra/repository"
	ucEntry "github.com/BruksfildServices01/ojt-tracker/internal/usecase/entry"
)

var (
	reportUser   string
	reportFormat string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print a user's progress toward their target hours",
	Args:  cobra.NoArgs,
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportUser, "user", "", "User id (uuid)")
	reportCmd.Flags().StringVar(&reportFormat, "format", "text", "Output format: text, json")
	_ = reportCmd.MarkFlagRequired("user")
}

func runReport(cmd *cobra.Command, _ []string) error {
	if _, err := uuid.Parse(reportUser); err != nil {
		return fmt.Errorf("--user: %w", err)
	}
	if reportFormat != "text" && reportFormat != "json" {
		return fmt.Errorf("--format: unsupported %q", reportFormat)
	}

	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	db, err := openDB(cfg, logger, false)
	if err != nil {
		return err
	}

	uc := ucEntry.NewGetProgress(infraRepo.NewEntryGormRepository(db), cfg.DefaultRequiredHours)
	p, err := uc.Execute(cmd.Context(), reportUser)
	if err != nil {
		return err
	}

	return writeReport(cmd.OutOrStdout(), reportFormat, p)
}

func writeReport(w io.Writer, format string, p domainEntry.Progress) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(p)
	}

	_, err := fmt.Fprintf(w,
		"Entries:    %d\nCompleted:  %.2f h\nRequired:   %.2f h\nRemaining:  %.2f h\nProgress:   %d%%\n",
		p.EntryCount,
		p.CompletedHours,
		p.RequiredHours,
		p.RemainingHours,
		p.CompletionPercentage,
	)
	return err
}
