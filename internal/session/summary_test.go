package session

import "testing"

func TestBuildReport_Empty(t *testing.T) {
	r := BuildReport(nil, 0, 0)
	if r.Total != 0 || r.Accuracy != 0 || r.AvgElapsed != 0 || r.AvgConfidence != 0 {
		t.Errorf("report = %+v, want zeros", r)
	}
	if r.CalibrationText() != "not measured" {
		t.Errorf("CalibrationText() = %q, want not measured", r.CalibrationText())
	}
	if r.Rank != RankTrainee {
		t.Errorf("Rank = %q, want %q", r.Rank, RankTrainee)
	}
}

func TestBuildReport_Aggregates(t *testing.T) {
	attempts := []Attempt{
		{Correct: true, ElapsedSecs: 10, Confidence: 5, ReasoningProvided: true},
		{Correct: false, ElapsedSecs: 20, Confidence: 5},
		{Correct: true, ElapsedSecs: 5, Confidence: 2, ReasoningProvided: true},
		{Correct: true, ElapsedSecs: 12, Confidence: 3},
		{Correct: false, ElapsedSecs: 60, Confidence: 3},
		{Correct: true, ElapsedSecs: 7, Confidence: 4},
		{Correct: true, ElapsedSecs: 9, Confidence: 5},
		{Correct: false, ElapsedSecs: 30, Confidence: 1},
	}
	r := BuildReport(attempts, 400, 3)

	if r.Correct != 5 || r.Total != 8 {
		t.Errorf("correct/total = %d/%d, want 5/8", r.Correct, r.Total)
	}
	if r.Accuracy != 62.5 {
		t.Errorf("Accuracy = %v, want 62.5", r.Accuracy)
	}
	if got := r.AccuracyText(); got != "63" {
		t.Errorf("AccuracyText() = %q, want 63", got)
	}
	if got := r.AvgElapsedText(); got != "19.1" {
		t.Errorf("AvgElapsedText() = %q, want 19.1", got)
	}
	if got := r.AvgConfidenceText(); got != "3.50" {
		t.Errorf("AvgConfidenceText() = %q, want 3.50", got)
	}
	if r.WithReasoning != 2 {
		t.Errorf("WithReasoning = %d, want 2", r.WithReasoning)
	}
	hc := r.HighConfidence
	if !hc.Measured || hc.Total != 3 || hc.Correct != 2 {
		t.Errorf("HighConfidence = %+v, want 2/3 measured", hc)
	}
	if got := r.CalibrationText(); got != "67%" {
		t.Errorf("CalibrationText() = %q, want 67%%", got)
	}
	if r.Rank != RankJunior {
		t.Errorf("Rank = %q, want %q", r.Rank, RankJunior)
	}
}

func TestRank(t *testing.T) {
	tests := []struct {
		accuracy  float64
		maxStreak int
		want      string
	}{
		{100, 5, RankChief},
		{90, 5, RankChief},
		{90, 4, RankSenior},
		{89.9, 7, RankSenior},
		{75, 3, RankSenior},
		{75, 2, RankJunior},
		{100, 0, RankJunior},
		{50, 0, RankJunior},
		{49.9, 9, RankTrainee},
		{0, 0, RankTrainee},
	}
	for _, tt := range tests {
		if got := Rank(tt.accuracy, tt.maxStreak); got != tt.want {
			t.Errorf("Rank(%v, %d) = %q, want %q", tt.accuracy, tt.maxStreak, got, tt.want)
		}
	}
}

func TestStateReport_FullRun(t *testing.T) {
	s := startBeginner(t)
	for !(s.Screen == ScreenResults) {
		sc, _ := s.Current()
		s = Select(s, sc.CorrectTacticID)
		s = SetConfidence(s, 5)
		s, _, _ = Submit(s)
		s, _ = Advance(s)
	}
	r := s.Report()
	if r.Accuracy != 100 || r.MaxStreak != 4 {
		t.Errorf("accuracy/maxStreak = %v/%d, want 100/4", r.Accuracy, r.MaxStreak)
	}
	if r.Rank != RankSenior {
		t.Errorf("Rank = %q, want %q", r.Rank, RankSenior)
	}
	if r.CalibrationText() != "100%" {
		t.Errorf("CalibrationText() = %q, want 100%%", r.CalibrationText())
	}
	if r.Score != s.Score {
		t.Errorf("Score = %d, want %d", r.Score, s.Score)
	}
}
