package services

import (
	"ext-data/errors"
	"ext-data/repositories"
	"ext-data/storage"
	"fmt"
	"log/slog"
	"mime"
	"os"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

type IngestService struct {
	storage *storage.Storage
	log     *slog.Logger
}

func NewIngestService(storage *storage.Storage, log *slog.Logger) *IngestService {
	return &IngestService{storage: storage, log: log}
}

// Enqueue stages one file task per path and returns how many were staged.
// Either every path is staged or none is; changes staged before the call are kept.
// Committing is left to the owner of the unit of work.
func (i *IngestService) Enqueue(paths []string, priority repositories.Priority) (int, error) {
	tasks, ok := storage.GetRepository[repositories.IFileTaskRepository](i.storage)
	if !ok {
		return 0, fmt.Errorf("%w: no provider for the file task repository", errors.ErrConfiguration)
	}

	rollback := savepoint(i.storage)
	for _, path := range paths {
		task, err := i.Describe(path, priority)
		if err != nil {
			rollback()
			return 0, err
		}
		if err = tasks.EnqueueTask(task); err != nil {
			rollback()
			return 0, err
		}
	}
	i.log.Debug("Files staged", "count", len(paths))
	return len(paths), nil
}

// Describe builds the file task of path: size from the file system, MIME type from its content.
func (i *IngestService) Describe(path string, priority repositories.Priority) (repositories.FileTask, error) {
	if path == "" {
		return repositories.FileTask{}, errors.ErrEmptyPath
	}
	info, err := os.Stat(path)
	if err != nil {
		return repositories.FileTask{}, err
	}
	detected, err := mimetype.DetectFile(path)
	if err != nil {
		return repositories.FileTask{}, fmt.Errorf("detect mime type of %s: %w", path, err)
	}
	effective, _, err := mime.ParseMediaType(detected.String())
	if err != nil {
		effective = "unknown"
	}

	return repositories.FileTask{
		ID:                uuid.NewString(),
		Path:              path,
		RawMimeType:       detected.String(),
		EffectiveMimeType: effective,
		Size:              uint64(info.Size()),
		Priority:          priority,
		CreatedAt:         time.Now().UTC(),
	}, nil
}
