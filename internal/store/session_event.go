package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// eventRepo implements EventRepo with ent's SQL builder.
type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(sessionEventsTable).
		Columns(
			"sequence", "timestamp", "session_id", "action", "level",
			"scenarios_total", "scenarios_answered", "correct_answers",
			"score", "max_streak", "rank", "duration_secs",
		).
		Values(
			seqNum, time.Now().UTC(), data.SessionID, data.Action, data.Level,
			data.ScenariosTotal, data.ScenariosAnswered, data.CorrectAnswers,
			data.Score, data.MaxStreak, data.Rank, data.DurationSecs,
		).
		Query()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummaryRecord, error) {
	sel := entsql.Dialect(dialect.SQLite).
		Select(
			"sequence", "timestamp", "session_id", "action", "level",
			"scenarios_total", "scenarios_answered", "correct_answers",
			"score", "max_streak", "rank", "duration_secs",
		).
		From(entsql.Table(sessionEventsTable)).
		Where(entsql.In("action", ActionEnd, ActionAbandon)).
		OrderBy(entsql.Desc("sequence"))
	applyQueryOpts(sel, opts)

	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query session summaries: %w", err)
	}
	defer rows.Close()

	var records []SessionSummaryRecord
	for rows.Next() {
		var rec SessionSummaryRecord
		if err := rows.Scan(
			&rec.Sequence, &rec.Timestamp, &rec.SessionID, &rec.Action, &rec.Level,
			&rec.ScenariosTotal, &rec.ScenariosAnswered, &rec.CorrectAnswers,
			&rec.Score, &rec.MaxStreak, &rec.Rank, &rec.DurationSecs,
		); err != nil {
			return nil, fmt.Errorf("scan session summary: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query session summaries: %w", err)
	}
	return records, nil
}

// applyQueryOpts adds the common filters to a selector over an event table.
func applyQueryOpts(sel *entsql.Selector, opts QueryOpts) {
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}
	if opts.After > 0 {
		sel.Where(entsql.GT("sequence", opts.After))
	}
	if opts.Before > 0 {
		sel.Where(entsql.LT("sequence", opts.Before))
	}
	if !opts.From.IsZero() {
		sel.Where(entsql.GTE("timestamp", opts.From.UTC()))
	}
	if !opts.To.IsZero() {
		sel.Where(entsql.LTE("timestamp", opts.To.UTC()))
	}
	if opts.SessionID != "" {
		sel.Where(entsql.EQ("session_id", opts.SessionID))
	}
}
