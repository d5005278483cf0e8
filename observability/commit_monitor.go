package observability

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

const maxRecentCommits = 20

// RecentCommit describes one commit attempt of a storage context.
type RecentCommit struct {
	ContextID uuid.UUID `json:"context_id"`
	Affected  int       `json:"affected"`
	Status    string    `json:"status"`
	At        time.Time `json:"at"`
}

// CommitStats is a point-in-time copy of the monitor counters.
type CommitStats struct {
	Commits         uint64         `json:"commits"`
	AffectedRecords uint64         `json:"affected_records"`
	Failures        uint64         `json:"failures"`
	Cancellations   uint64         `json:"cancellations"`
	RecentCommits   []RecentCommit `json:"recent_commits"`
}

// CommitMonitor counts commit outcomes. A nil monitor ignores every record.
type CommitMonitor struct {
	commits         atomic.Uint64
	affectedRecords atomic.Uint64
	failures        atomic.Uint64
	cancellations   atomic.Uint64

	mu     sync.RWMutex
	recent []RecentCommit
}

func NewCommitMonitor() *CommitMonitor {
	return &CommitMonitor{recent: make([]RecentCommit, 0, maxRecentCommits)}
}

func (m *CommitMonitor) RecordCommit(contextID uuid.UUID, affected int) {
	if m == nil {
		return
	}
	m.commits.Add(1)
	m.affectedRecords.Add(uint64(affected))
	m.remember(contextID, affected, "committed")
}

func (m *CommitMonitor) RecordFailure(contextID uuid.UUID) {
	if m == nil {
		return
	}
	m.failures.Add(1)
	m.remember(contextID, 0, "failed")
}

func (m *CommitMonitor) RecordCancellation(contextID uuid.UUID) {
	if m == nil {
		return
	}
	m.cancellations.Add(1)
	m.remember(contextID, 0, "cancelled")
}

// remember keeps the latest commits first, bounded to maxRecentCommits.
func (m *CommitMonitor) remember(contextID uuid.UUID, affected int, status string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.recent = append([]RecentCommit{{
		ContextID: contextID,
		Affected:  affected,
		Status:    status,
		At:        time.Now().UTC(),
	}}, m.recent...)
	if len(m.recent) > maxRecentCommits {
		m.recent = m.recent[:maxRecentCommits]
	}
}

func (m *CommitMonitor) Snapshot() CommitStats {
	if m == nil {
		return CommitStats{}
	}
	m.mu.RLock()
	recent := make([]RecentCommit, len(m.recent))
	copy(recent, m.recent)
	m.mu.RUnlock()

	return CommitStats{
		Commits:         m.commits.Load(),
		AffectedRecords: m.affectedRecords.Load(),
		Failures:        m.failures.Load(),
		Cancellations:   m.cancellations.Load(),
		RecentCommits:   recent,
	}
}

func (m *CommitMonitor) LogStats(log *slog.Logger) {
	stats := m.Snapshot()
	log.Info("Commit statistics",
		"commits", stats.Commits,
		"affected_records", stats.AffectedRecords,
		"failures", stats.Failures,
		"cancellations", stats.Cancellations,
	)
}
