package observability

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestCommitMonitor_Counts_Outcomes(t *testing.T) {
	req := require.New(t)
	monitor := NewCommitMonitor()
	contextID := uuid.New()

	// When commits of every kind are recorded
	monitor.RecordCommit(contextID, 2)
	monitor.RecordCommit(contextID, 3)
	monitor.RecordFailure(contextID)
	monitor.RecordCancellation(contextID)

	// Then the counters add up
	stats := monitor.Snapshot()
	req.Equal(uint64(2), stats.Commits)
	req.Equal(uint64(5), stats.AffectedRecords)
	req.Equal(uint64(1), stats.Failures)
	req.Equal(uint64(1), stats.Cancellations)

	// And the latest commit comes first
	req.Len(stats.RecentCommits, 4)
	req.Equal("cancelled", stats.RecentCommits[0].Status)
	req.Equal("committed", stats.RecentCommits[3].Status)
	req.Equal(2, stats.RecentCommits[3].Affected)
}

func TestCommitMonitor_Keeps_Bounded_History(t *testing.T) {
	req := require.New(t)
	monitor := NewCommitMonitor()

	for i := range maxRecentCommits + 5 {
		monitor.RecordCommit(uuid.New(), i)
	}

	stats := monitor.Snapshot()
	req.Len(stats.RecentCommits, maxRecentCommits)
	req.Equal(maxRecentCommits+4, stats.RecentCommits[0].Affected)
}

func TestCommitMonitor_Nil_Is_Noop(t *testing.T) {
	req := require.New(t)
	var monitor *CommitMonitor

	monitor.RecordCommit(uuid.New(), 1)
	monitor.RecordFailure(uuid.New())

	req.Equal(CommitStats{}, monitor.Snapshot())
}
