//go:generate go run go.uber.org/mock/mockgen -source=file_task.go -destination=../mocks/mock_file_task_repository.go -package=mocks
package repositories

import (
	"ext-data/contract"
	"time"
)

type Priority int

const (
	HIGH   Priority = 0
	NORMAL Priority = 1
)

// FileTask is a file waiting to be processed, persisted so the queue survives restarts.
type FileTask struct {
	ID                string
	Path              string
	RawMimeType       string
	EffectiveMimeType string
	Size              uint64
	Priority          Priority
	CreatedAt         time.Time
	RetryCount        int
}

type IFileTaskRepository interface {
	contract.Repository
	EnqueueTask(task FileTask) error
	GetNextBatch(limit int) ([]FileTask, error)
	MarkAsProcessing(task FileTask) error
}
