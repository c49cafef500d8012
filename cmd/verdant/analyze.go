package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/verdantlabs/verdant/internal/cli"
	"github.com/verdantlabs/verdant/internal/model"
)

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [lifestyle description]",
		Short: "Analyze a lifestyle description and produce a reduction plan",
		Long: `Run the complete carbon footprint analysis pipeline on a free-text
lifestyle description. The four domain estimates run concurrently, the
results are synthesized into a prioritized plan, and the plan is
refined and evaluated before being presented.

Example:
  verdant analyze "I live in Tokyo, drive an SUV daily and eat steak most nights"`,
		Args: cobra.MinimumNArgs(1),
		RunE: runAnalyze,
	}

	cmd.Flags().Bool("no-save", false, "Skip saving the result to the analysis history")
	cmd.Flags().Bool("json", false, "Print the raw result as JSON instead of the styled report")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	noSave, _ := cmd.Flags().GetBool("no-save")
	asJSON, _ := cmd.Flags().GetBool("json")

	description := strings.TrimSpace(strings.Join(args, " "))
	if description == "" {
		return fmt.Errorf("lifestyle description cannot be empty")
	}

	ctx := cmd.Context()
	engine := newAnalysisEngine()

	bar := newAnalysisSpinner()
	result := runWithSpinner(bar, func() *model.AnalysisResult {
		return engine.RunCompleteAnalysis(ctx, description)
	})

	if asJSON {
		return printResultJSON(result)
	}

	fmt.Println(cli.RenderReport(result))

	if noSave {
		return nil
	}

	store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	id, err := store.SaveAnalysis(ctx, description, result)
	if err != nil {
		return fmt.Errorf("failed to save analysis: %w", err)
	}
	slog.Info("Analysis saved", "id", id, "session_id", result.SessionID)

	return nil
}

func newAnalysisSpinner() *progressbar.ProgressBar {
	return progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Analyzing lifestyle...[reset]"),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(os.Stderr)
		}),
	)
}

func runWithSpinner(bar *progressbar.ProgressBar, run func() *model.AnalysisResult) *model.AnalysisResult {
	done := make(chan *model.AnalysisResult, 1)
	go func() { done <- run() }()

	tick := time.NewTicker(100 * time.Millisecond)
	defer tick.Stop()

	for {
		select {
		case result := <-done:
			_ = bar.Finish()
			return result
		case <-tick.C:
			_ = bar.Add(1)
		}
	}
}

func printResultJSON(result *model.AnalysisResult) error {
	payload, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	fmt.Println(string(payload))
	return nil
}
