package store

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ParticipantKey is the settings key holding the anonymous participant id.
const ParticipantKey = "ai_undercover_participant_id"

// ParticipantID returns the persisted anonymous participant id, creating
// and storing one on first use. The id is stable across calls.
func ParticipantID(ctx context.Context, repo SettingsRepo) (string, error) {
	id, ok, err := repo.Get(ctx, ParticipantKey)
	if err != nil {
		return "", fmt.Errorf("read participant id: %w", err)
	}
	if ok && id != "" {
		return id, nil
	}

	fresh := NewParticipantID(time.Now())
	if ok {
		// A blank value is replaced rather than kept.
		if err := repo.Set(ctx, ParticipantKey, fresh); err != nil {
			return "", fmt.Errorf("store participant id: %w", err)
		}
		return fresh, nil
	}

	id, err = repo.SetIfAbsent(ctx, ParticipantKey, fresh)
	if err != nil {
		return "", fmt.Errorf("store participant id: %w", err)
	}
	return id, nil
}

// NewParticipantID builds an id of the form "p_" + 8 random characters +
// the base36 millisecond timestamp.
func NewParticipantID(now time.Time) string {
	random := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return "p_" + random + strconv.FormatInt(now.UnixMilli(), 36)
}
