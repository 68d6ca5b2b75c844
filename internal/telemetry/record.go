package telemetry

import (
	"github.com/abhisek/undercover/internal/content"
	"github.com/abhisek/undercover/internal/session"
)

// Record is the JSON document sent for every answered scenario.
type Record struct {
	ParticipantID      string  `json:"participantId"`
	SessionID          string  `json:"sessionId"`
	Difficulty         string  `json:"difficulty"`
	ScenarioID         string  `json:"scenarioId"`
	ScenarioContext    string  `json:"scenarioContext"`
	ScenarioMessage    string  `json:"scenarioMessage"`
	AIType             string  `json:"aiType"`
	SelectedTacticID   *string `json:"selectedTacticId"`
	SelectedTacticName *string `json:"selectedTacticName"`
	CorrectTacticID    string  `json:"correctTacticId"`
	CorrectTacticName  string  `json:"correctTacticName"`
	Correct            bool    `json:"correct"`
	BaseScore          int     `json:"baseScore"`
	TimeBonus          int     `json:"timeBonus"`
	ReasoningBonus     int     `json:"reasoningBonus"`
	StreakBonus        int     `json:"streakBonus"`
	TotalScore         int     `json:"totalScore"`
	TimeTakenSeconds   int     `json:"timeTakenSeconds"`
	Reasoning          string  `json:"reasoning"`
	Confidence         int     `json:"confidence"`
}

// NewRecord builds the record for an attempt. Tactic names fall back to
// the raw id when the catalog has no entry.
func NewRecord(participantID, sessionID string, level content.Level, a session.Attempt) Record {
	rec := Record{
		ParticipantID:     participantID,
		SessionID:         sessionID,
		Difficulty:        string(level),
		ScenarioID:        a.Scenario.ID,
		ScenarioContext:   a.Scenario.Context,
		ScenarioMessage:   a.Scenario.Message,
		AIType:            a.Scenario.AIType,
		CorrectTacticID:   a.Scenario.CorrectTacticID,
		CorrectTacticName: content.TacticName(a.Scenario.CorrectTacticID),
		Correct:           a.Correct,
		BaseScore:         a.Bonuses.Base,
		TimeBonus:         a.Bonuses.Time,
		ReasoningBonus:    a.Bonuses.Reasoning,
		StreakBonus:       a.Bonuses.Streak,
		TotalScore:        a.Points,
		TimeTakenSeconds:  a.ElapsedSecs,
		Reasoning:         a.Reasoning,
		Confidence:        a.Confidence,
	}
	if a.Selected != "" {
		id := a.Selected
		name := content.TacticName(id)
		rec.SelectedTacticID = &id
		rec.SelectedTacticName = &name
	}
	return rec
}

// SelectedName returns the selected tactic name, or "" when unanswered.
func (r Record) SelectedName() string {
	if r.SelectedTacticName == nil {
		return ""
	}
	return *r.SelectedTacticName
}
