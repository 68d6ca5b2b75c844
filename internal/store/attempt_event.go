package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

var attemptColumns = []string{
	"source", "session_id", "participant_id", "level", "scenario_id",
	"ai_type", "selected_tactic_id", "correct_tactic_id", "correct",
	"base_score", "time_bonus", "reasoning_bonus", "streak_bonus",
	"total_score", "time_taken_secs", "confidence", "reasoning",
}

func (r *eventRepo) AppendAttemptEvent(ctx context.Context, data AttemptEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}
	if data.Source == "" {
		data.Source = SourceLocal
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(attemptEventsTable).
		Columns(append([]string{"sequence", "timestamp"}, attemptColumns...)...).
		Values(
			seqNum, time.Now().UTC(),
			data.Source, data.SessionID, data.ParticipantID, data.Level, data.ScenarioID,
			data.AIType, data.SelectedTacticID, data.CorrectTacticID, data.Correct,
			data.BaseScore, data.TimeBonus, data.ReasoningBonus, data.StreakBonus,
			data.TotalScore, data.TimeTakenSecs, data.Confidence, data.Reasoning,
		).
		Query()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryAttempts(ctx context.Context, opts QueryOpts) ([]AttemptRecord, error) {
	sel := entsql.Dialect(dialect.SQLite).
		Select(append([]string{"sequence", "timestamp"}, attemptColumns...)...).
		From(entsql.Table(attemptEventsTable)).
		OrderBy(entsql.Desc("sequence"))
	applyQueryOpts(sel, opts)
	if opts.Source != "" {
		sel.Where(entsql.EQ("source", opts.Source))
	}

	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	defer rows.Close()

	var records []AttemptRecord
	for rows.Next() {
		var rec AttemptRecord
		if err := rows.Scan(
			&rec.Sequence, &rec.Timestamp,
			&rec.Source, &rec.SessionID, &rec.ParticipantID, &rec.Level, &rec.ScenarioID,
			&rec.AIType, &rec.SelectedTacticID, &rec.CorrectTacticID, &rec.Correct,
			&rec.BaseScore, &rec.TimeBonus, &rec.ReasoningBonus, &rec.StreakBonus,
			&rec.TotalScore, &rec.TimeTakenSecs, &rec.Confidence, &rec.Reasoning,
		); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	return records, nil
}

func (r *eventRepo) Stats(ctx context.Context) (Stats, error) {
	stats := Stats{ByLevel: make(map[string]LevelStats)}

	query, args := entsql.Dialect(dialect.SQLite).
		Select(entsql.Count("*"), entsql.Sum("correct")).
		From(entsql.Table(attemptEventsTable)).
		Where(entsql.EQ("source", SourceLocal)).
		Query()

	var correct sql.NullInt64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&stats.Attempts, &correct); err != nil {
		return Stats{}, fmt.Errorf("query attempt totals: %w", err)
	}
	stats.Correct = int(correct.Int64)

	sessions, err := r.QuerySessionSummaries(ctx, QueryOpts{})
	if err != nil {
		return Stats{}, err
	}
	for _, s := range sessions {
		if s.Action == ActionAbandon {
			stats.SessionsAbandoned++
			continue
		}
		stats.SessionsCompleted++
		stats.BestScore = max(stats.BestScore, s.Score)
		stats.BestStreak = max(stats.BestStreak, s.MaxStreak)

		ls := stats.ByLevel[s.Level]
		ls.Sessions++
		ls.BestScore = max(ls.BestScore, s.Score)
		stats.ByLevel[s.Level] = ls
	}
	return stats, nil
}

func (r *eventRepo) Reset(ctx context.Context) error {
	for _, table := range []string{attemptEventsTable, sessionEventsTable} {
		query, args := entsql.Dialect(dialect.SQLite).Delete(table).Query()
		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("reset %s: %w", table, err)
		}
	}
	return nil
}
