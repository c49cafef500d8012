package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verdantlabs/verdant/internal/cli"
	"github.com/verdantlabs/verdant/internal/model"
)

func historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List past analyses",
		Long: `Show recently saved analyses, newest first. Use --search to filter
by a substring of the original lifestyle description.`,
		RunE: runHistory,
	}

	cmd.Flags().Int("limit", 10, "Maximum number of analyses to show")
	cmd.Flags().String("search", "", "Only show analyses whose input contains this text")

	return cmd
}

func runHistory(cmd *cobra.Command, _ []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	search, _ := cmd.Flags().GetString("search")

	ctx := cmd.Context()
	store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	var conversations []model.Conversation
	if search != "" {
		conversations, err = store.SearchAnalyses(ctx, search, limit)
	} else {
		conversations, err = store.GetRecentAnalyses(ctx, limit)
	}
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	fmt.Println(cli.RenderHistory(conversations))
	return nil
}
