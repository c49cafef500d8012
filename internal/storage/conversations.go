package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/verdantlabs/verdant/internal/model"
)

const defaultQueryLimit = 10

// SaveAnalysis persists a completed analysis and returns its row ID.
// Degraded runs are stored with a zero eco score so the stats aggregates
// skip them.
func (s *SQLiteStorage) SaveAnalysis(ctx context.Context, input string, result *model.AnalysisResult) (int64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateString(input, "input"); err != nil {
		return 0, err
	}
	if result == nil {
		return 0, fmt.Errorf("%w: result", ErrNilParameter)
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal analysis result: %w", err)
	}

	ecoScore := result.EcoScore
	if result.Degraded {
		ecoScore = 0
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO conversations (timestamp, user_input, result_json, eco_score, carbon_footprint)
		VALUES (?, ?, ?, ?, ?)`,
		result.Timestamp, input, string(payload), ecoScore, result.TotalCarbonFootprint)
	if err != nil {
		return 0, fmt.Errorf("failed to save analysis: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get analysis ID: %w", err)
	}
	return id, nil
}

// GetRecentAnalyses returns the most recent analyses, newest first.
func (s *SQLiteStorage) GetRecentAnalyses(ctx context.Context, limit int) ([]model.Conversation, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultQueryLimit
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, timestamp, user_input, result_json, eco_score, carbon_footprint
		FROM conversations
		ORDER BY timestamp DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent analyses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanConversations(rows)
}

// SearchAnalyses returns analyses whose input contains the pattern, newest first.
func (s *SQLiteStorage) SearchAnalyses(ctx context.Context, pattern string, limit int) ([]model.Conversation, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(pattern, "pattern"); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultQueryLimit
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, timestamp, user_input, result_json, eco_score, carbon_footprint
		FROM conversations
		WHERE user_input LIKE '%' || ? || '%'
		ORDER BY timestamp DESC, id DESC
		LIMIT ?`, pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search analyses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanConversations(rows)
}

// GetStats returns aggregate statistics over stored analyses. Degraded runs
// are stored with a zero eco score and stay out of the score averages.
func (s *SQLiteStorage) GetStats(ctx context.Context) (*model.MemoryStats, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	stats := &model.MemoryStats{}

	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM conversations`).Scan(&stats.TotalConversations)
	if err != nil {
		return nil, fmt.Errorf("failed to count conversations: %w", err)
	}

	var avgScore, bestScore, avgFootprint sql.NullFloat64
	err = s.db.QueryRowContext(ctx, `
		SELECT AVG(eco_score), MAX(eco_score), AVG(carbon_footprint)
		FROM conversations
		WHERE eco_score > 0`).Scan(&avgScore, &bestScore, &avgFootprint)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate stats: %w", err)
	}

	stats.AverageEcoScore = avgScore.Float64
	stats.BestEcoScore = bestScore.Float64
	stats.AverageFootprint = avgFootprint.Float64
	return stats, nil
}

func scanConversations(rows *sql.Rows) ([]model.Conversation, error) {
	var conversations []model.Conversation
	for rows.Next() {
		var conv model.Conversation
		var payload string
		if err := rows.Scan(&conv.ID, &conv.Timestamp, &conv.Input, &payload, &conv.EcoScore, &conv.CarbonFootprint); err != nil {
			return nil, fmt.Errorf("failed to scan conversation: %w", err)
		}
		var result model.AnalysisResult
		if err := json.Unmarshal([]byte(payload), &result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal analysis result: %w", err)
		}
		conv.Result = &result
		conversations = append(conversations, conv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate conversations: %w", err)
	}
	return conversations, nil
}
