package storage

import (
	"ext-data/repositories"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type MessageRepository struct {
	Bound
	log           *slog.Logger
	limitMessages *int
}

var _ repositories.IMessageRepository = (*MessageRepository)(nil)

func NewMessageRepository(log *slog.Logger, limitMessages *int) *MessageRepository {
	return &MessageRepository{log: log, limitMessages: limitMessages}
}

// StoreMessage stages a message under "msg:{room}:{timestamp_padded}:{uuid}".
// The 19-digit padding keeps keys in chronological order and the UUID separates
// two messages sent in the same nanosecond. Timestamps before 1970 are rejected
// with errors.ErrInvalidTimestamp.
func (m *MessageRepository) StoreMessage(message repositories.DiskMessage) error {
	c, err := m.badgerContext()
	if err != nil {
		return err
	}
	key, err := messageKey(message)
	if err != nil {
		return err
	}
	data, err := encode(map[string]any{
		"id":      message.ID.String(),
		"room":    message.Room,
		"author":  message.Author,
		"content": message.Content,
		"at":      formatTime(message.At),
	})
	if err != nil {
		return err
	}
	c.Set(key, data)
	return nil
}

// GetMessages pages through committed messages of a room, newest first.
// The returned cursor is the key suffix of the last message read; pass it back
// to continue after it.
func (m *MessageRepository) GetMessages(room int, cursor *string) ([]repositories.DiskMessage, *string, error) {
	c, err := m.badgerContext()
	if err != nil {
		return nil, nil, err
	}

	var byteMessages [][]byte
	var lastKey string
	err = c.View(func(txn *badger.Txn) error {
		prefixStr := fmt.Sprintf("msg:%d:", room)
		prefix := []byte(prefixStr)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		var seekKey []byte
		switch cursor {
		case nil:
			// Past the newest possible timestamp, then walk backwards
			seekKey = append([]byte(prefixStr), []byte("9999999999999999999")...)
		default:
			seekKey = append([]byte(prefixStr), []byte(*cursor)...)
		}

		it.Seek(seekKey)
		if cursor != nil && it.ValidForPrefix(prefix) && string(it.Item().Key()) == string(seekKey) {
			it.Next()
		}

		for ; it.ValidForPrefix(prefix); it.Next() {
			if m.limitMessages != nil && len(byteMessages) == *m.limitMessages {
				m.log.Debug("Message limit reached", "room", room, "limit", *m.limitMessages)
				break
			}
			item := it.Item()
			lastKey = string(item.Key()[len(prefixStr):])
			value, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			byteMessages = append(byteMessages, value)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	messages := make([]repositories.DiskMessage, 0, len(byteMessages))
	for _, b := range byteMessages {
		message, err := toDiskMessage(b)
		if err != nil {
			return nil, nil, err
		}
		messages = append(messages, message)
	}
	return messages, &lastKey, nil
}

func messageKey(message repositories.DiskMessage) ([]byte, error) {
	nanos, err := keyNanos(message.At)
	if err != nil {
		return nil, err
	}
	return fmt.Appendf(nil, "msg:%d:%019d:%s", message.Room, nanos, message.ID), nil
}

func toDiskMessage(data []byte) (repositories.DiskMessage, error) {
	record, err := decode(data)
	if err != nil {
		return repositories.DiskMessage{}, err
	}
	id, err := uuid.Parse(stringField(record, "id"))
	if err != nil {
		return repositories.DiskMessage{}, err
	}
	at, err := timeField(record, "at")
	if err != nil {
		return repositories.DiskMessage{}, err
	}
	return repositories.DiskMessage{
		ID:      id,
		Room:    intField(record, "room"),
		Author:  stringField(record, "author"),
		Content: stringField(record, "content"),
		At:      at,
	}, nil
}
