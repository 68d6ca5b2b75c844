package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

// Table and column names shared by the repositories.
const (
	settingsTable      = "settings"
	sessionEventsTable = "session_events"
	attemptEventsTable = "attempt_events"
)

var (
	// SettingsColumns holds the columns for the "settings" table.
	SettingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "value", Type: field.TypeString},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SettingsTable holds the schema information for the "settings" table.
	SettingsTable = &schema.Table{
		Name:       settingsTable,
		Columns:    SettingsColumns,
		PrimaryKey: []*schema.Column{SettingsColumns[0]},
	}

	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "level", Type: field.TypeString},
		{Name: "scenarios_total", Type: field.TypeInt, Default: 0},
		{Name: "scenarios_answered", Type: field.TypeInt, Default: 0},
		{Name: "correct_answers", Type: field.TypeInt, Default: 0},
		{Name: "score", Type: field.TypeInt, Default: 0},
		{Name: "max_streak", Type: field.TypeInt, Default: 0},
		{Name: "rank", Type: field.TypeString, Default: ""},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       sessionEventsTable,
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "sessionevent_session_id", Columns: []*schema.Column{SessionEventsColumns[3]}},
			{Name: "sessionevent_action", Columns: []*schema.Column{SessionEventsColumns[4]}},
		},
	}

	// AttemptEventsColumns holds the columns for the "attempt_events" table.
	AttemptEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "source", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString},
		{Name: "participant_id", Type: field.TypeString},
		{Name: "level", Type: field.TypeString},
		{Name: "scenario_id", Type: field.TypeString},
		{Name: "ai_type", Type: field.TypeString, Default: ""},
		{Name: "selected_tactic_id", Type: field.TypeString, Default: ""},
		{Name: "correct_tactic_id", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
		{Name: "base_score", Type: field.TypeInt},
		{Name: "time_bonus", Type: field.TypeInt},
		{Name: "reasoning_bonus", Type: field.TypeInt},
		{Name: "streak_bonus", Type: field.TypeInt},
		{Name: "total_score", Type: field.TypeInt},
		{Name: "time_taken_secs", Type: field.TypeInt},
		{Name: "confidence", Type: field.TypeInt},
		{Name: "reasoning", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// AttemptEventsTable holds the schema information for the "attempt_events" table.
	AttemptEventsTable = &schema.Table{
		Name:       attemptEventsTable,
		Columns:    AttemptEventsColumns,
		PrimaryKey: []*schema.Column{AttemptEventsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "attemptevent_session_id", Columns: []*schema.Column{AttemptEventsColumns[4]}},
			{Name: "attemptevent_source", Columns: []*schema.Column{AttemptEventsColumns[3]}},
			{Name: "attemptevent_scenario_id", Columns: []*schema.Column{AttemptEventsColumns[7]}},
		},
	}

	// Tables holds every table migrated by Open.
	Tables = []*schema.Table{
		SettingsTable,
		SessionEventsTable,
		AttemptEventsTable,
	}
)
