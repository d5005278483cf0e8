package storage

import (
	goerrors "errors"
	"ext-data/errors"
	"ext-data/repositories"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/dgraph-io/badger/v4"
)

type FileTaskRepository struct {
	Bound
	log *slog.Logger
}

var _ repositories.IFileTaskRepository = (*FileTaskRepository)(nil)

func NewFileTaskRepository(log *slog.Logger) *FileTaskRepository {
	return &FileTaskRepository{log: log}
}

// EnqueueTask stages a pending task keyed by priority then creation time.
func (f *FileTaskRepository) EnqueueTask(task repositories.FileTask) error {
	c, err := f.badgerContext()
	if err != nil {
		return err
	}
	key, err := pendingKey(task)
	if err != nil {
		return err
	}
	data, err := encodeFileTask(task)
	if err != nil {
		return err
	}
	c.Set(key, data)
	return nil
}

// GetNextBatch reads up to limit committed pending tasks, HIGH priority first,
// oldest first within a priority.
func (f *FileTaskRepository) GetNextBatch(limit int) ([]repositories.FileTask, error) {
	c, err := f.badgerContext()
	if err != nil {
		return nil, err
	}

	var tasks []repositories.FileTask
	prefix := []byte("work:pending:")
	err = c.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		opts.PrefetchSize = limit

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix) && len(tasks) < limit; it.Next() {
			err := it.Item().Value(func(v []byte) error {
				task, err := decodeFileTask(v)
				if err != nil {
					return fmt.Errorf("failed to unmarshal task: %w", err)
				}
				tasks = append(tasks, task)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error during batch fetch: %w", err)
	}
	return tasks, nil
}

// MarkAsProcessing stages the move of a task from pending to processing.
// Both changes land in the same commit.
func (f *FileTaskRepository) MarkAsProcessing(task repositories.FileTask) error {
	c, err := f.badgerContext()
	if err != nil {
		return err
	}

	key, err := pendingKey(task)
	if err != nil {
		return err
	}
	if _, err = c.Get(key); goerrors.Is(err, badger.ErrKeyNotFound) {
		return fmt.Errorf("%w: %s", errors.ErrTaskNotPending, task.ID)
	} else if err != nil {
		return err
	}

	data, err := encodeFileTask(task)
	if err != nil {
		return fmt.Errorf("failed to marshal task for processing: %w", err)
	}
	c.Delete(key)
	c.Set([]byte("work:processing:"+task.ID), data)
	f.log.Debug("Task staged as processing", "task", task.ID, "path", task.Path)
	return nil
}

func pendingKey(task repositories.FileTask) ([]byte, error) {
	nanos, err := keyNanos(task.CreatedAt)
	if err != nil {
		return nil, err
	}
	return fmt.Appendf(nil, "work:pending:%d:%019d:%s", task.Priority, nanos, task.ID), nil
}

func encodeFileTask(task repositories.FileTask) ([]byte, error) {
	return encode(map[string]any{
		"id":                  task.ID,
		"path":                task.Path,
		"raw_mime_type":       task.RawMimeType,
		"effective_mime_type": task.EffectiveMimeType,
		"size":                strconv.FormatUint(task.Size, 10),
		"priority":            int(task.Priority),
		"created_at":          formatTime(task.CreatedAt),
		"retry_count":         task.RetryCount,
	})
}

func decodeFileTask(data []byte) (repositories.FileTask, error) {
	record, err := decode(data)
	if err != nil {
		return repositories.FileTask{}, err
	}
	size, err := uint64Field(record, "size")
	if err != nil {
		return repositories.FileTask{}, err
	}
	createdAt, err := timeField(record, "created_at")
	if err != nil {
		return repositories.FileTask{}, err
	}
	return repositories.FileTask{
		ID:                stringField(record, "id"),
		Path:              stringField(record, "path"),
		RawMimeType:       stringField(record, "raw_mime_type"),
		EffectiveMimeType: stringField(record, "effective_mime_type"),
		Size:              size,
		Priority:          repositories.Priority(intField(record, "priority")),
		CreatedAt:         createdAt,
		RetryCount:        intField(record, "retry_count"),
	}, nil
}
