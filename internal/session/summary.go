package session

import (
	"math"
	"strconv"
)

// Rank titles, best first.
const (
	RankChief   = "Chief Manipulation Hunter"
	RankSenior  = "Senior Ethics Investigator"
	RankJunior  = "Junior Pattern Analyst"
	RankTrainee = "Trainee Investigator"
)

// Report holds the data displayed on the results screen.
type Report struct {
	Score         int
	Correct       int
	Total         int
	Accuracy      float64 // percent
	AvgElapsed    float64 // seconds
	WithReasoning int
	AvgConfidence float64

	// HighConfidence is the calibration over confidence-5 answers.
	HighConfidence Calibration

	MaxStreak int
	Rank      string
}

// Calibration measures how often the most confident answers were right.
type Calibration struct {
	Total    int
	Correct  int
	Accuracy float64 // percent
	Measured bool
}

// BuildReport aggregates the session log into a Report.
func BuildReport(attempts []Attempt, score, maxStreak int) Report {
	r := Report{
		Score:     score,
		Total:     len(attempts),
		MaxStreak: maxStreak,
	}

	var elapsed, confidence int
	for _, a := range attempts {
		if a.Correct {
			r.Correct++
		}
		if a.ReasoningProvided {
			r.WithReasoning++
		}
		elapsed += a.ElapsedSecs
		confidence += a.Confidence
		if a.Confidence == MaxConfidence {
			r.HighConfidence.Total++
			if a.Correct {
				r.HighConfidence.Correct++
			}
		}
	}

	// An empty log divides by one so every ratio comes out zero.
	total := max(len(attempts), 1)
	r.Accuracy = float64(r.Correct) / float64(total) * 100
	r.AvgElapsed = float64(elapsed) / float64(total)
	if len(attempts) > 0 {
		r.AvgConfidence = float64(confidence) / float64(len(attempts))
	}
	if r.HighConfidence.Total > 0 {
		r.HighConfidence.Measured = true
		r.HighConfidence.Accuracy = float64(r.HighConfidence.Correct) / float64(r.HighConfidence.Total) * 100
	}

	r.Rank = Rank(r.Accuracy, maxStreak)
	return r
}

// Report builds the results aggregate for the state's session log.
func (s State) Report() Report {
	return BuildReport(s.Attempts, s.Score, s.MaxStreak)
}

// Rank maps accuracy (percent) and best streak to a title.
func Rank(accuracy float64, maxStreak int) string {
	switch {
	case accuracy >= 90 && maxStreak >= 5:
		return RankChief
	case accuracy >= 75 && maxStreak >= 3:
		return RankSenior
	case accuracy >= 50:
		return RankJunior
	default:
		return RankTrainee
	}
}

// AccuracyText formats accuracy with no decimals.
func (r Report) AccuracyText() string {
	return formatFixed(r.Accuracy, 0)
}

// AvgElapsedText formats the average answer time with one decimal.
func (r Report) AvgElapsedText() string {
	return formatFixed(r.AvgElapsed, 1)
}

// AvgConfidenceText formats the average confidence with two decimals.
func (r Report) AvgConfidenceText() string {
	return formatFixed(r.AvgConfidence, 2)
}

// CalibrationText formats the confidence-5 accuracy, or "not measured"
// when no answer was given at confidence 5.
func (r Report) CalibrationText() string {
	if !r.HighConfidence.Measured {
		return "not measured"
	}
	return formatFixed(r.HighConfidence.Accuracy, 0) + "%"
}

// formatFixed rounds half away from zero before formatting, so 62.5
// renders as "63" rather than the banker's "62".
func formatFixed(v float64, decimals int) string {
	p := math.Pow10(decimals)
	return strconv.FormatFloat(math.Round(v*p)/p, 'f', decimals, 64)
}
