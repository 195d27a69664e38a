package ticket

import "time"

// EditCooldown is the window after an accepted edit during which further
// edits are rejected. A never-edited ticket uses createdAt as the baseline,
// which equals updatedAt at creation, so callers always pass updatedAt.
const EditCooldown = 24 * time.Hour

type EditDecision struct {
	Allowed       bool
	NextAllowedAt time.Time
}

// DecideEdit is a pure function of (now, lastModified). When the edit is
// rejected, NextAllowedAt is exactly lastModified + 24h.
func DecideEdit(now, lastModified time.Time) EditDecision {
	nextAllowedAt := lastModified.Add(EditCooldown)
	if now.Before(nextAllowedAt) {
		return EditDecision{Allowed: false, NextAllowedAt: nextAllowedAt}
	}
	return EditDecision{Allowed: true}
}
