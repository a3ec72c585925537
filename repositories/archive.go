package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"convo/domain"
	"convo/errors"
)

// MessageArchive is a durable, best-effort copy of fanned-out messages
// in BadgerDB. The primary store stays authoritative; the archive only
// serves history reads that must survive a restart.
type MessageArchive struct {
	db    *badger.DB
	log   *slog.Logger
	limit *int
}

func NewMessageArchive(db *badger.DB, log *slog.Logger, limit *int) MessageArchive {
	return MessageArchive{db: db, log: log, limit: limit}
}

// archiveKey formats "msg:{conversation_id}:{timestamp_padded}:{id}".
// The 19-digit zero padding makes lexicographic order chronological;
// the message id disambiguates two messages in the same nanosecond.
func archiveKey(msg domain.Message) []byte {
	return fmt.Appendf(nil, "msg:%s:%019d:%s",
		msg.ConversationID,
		msg.CreatedAt.UnixNano(),
		msg.ID,
	)
}

func (a MessageArchive) Append(msg domain.Message) error {
	value, err := json.Marshal(msg)
	if err != nil {
		return errors.Internal("encoding archived message", err)
	}
	return a.db.Update(func(txn *badger.Txn) error {
		return txn.Set(archiveKey(msg), value)
	})
}

// History walks a conversation's archive newest first using a reverse
// prefix scan. The returned cursor is the key suffix of the last entry
// and resumes the scan on the next call; nil starts from the newest.
func (a MessageArchive) History(conversationID uuid.UUID, cursor *string) ([]domain.Message, *string, error) {
	prefix := []byte(fmt.Sprintf("msg:%s:", conversationID))
	var raw [][]byte
	var lastKey string

	err := a.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		seekKey := append(append([]byte{}, prefix...), []byte("9999999999999999999")...)
		if cursor != nil {
			seekKey = append(append([]byte{}, prefix...), []byte(*cursor)...)
		}
		it.Seek(seekKey)

		if cursor != nil && it.ValidForPrefix(prefix) {
			it.Next()
		}

		for ; it.ValidForPrefix(prefix); it.Next() {
			if a.limit != nil && len(raw) == *a.limit {
				break
			}
			item := it.Item()
			lastKey = string(item.Key()[len(prefix):])
			if err := item.Value(func(value []byte) error {
				raw = append(raw, append([]byte{}, value...))
				return nil
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, errors.Internal("scanning message archive", err)
	}

	// An empty page means the scan is exhausted; a nil cursor tells the
	// client to stop paging.
	if len(raw) == 0 {
		return nil, nil, nil
	}

	messages := make([]domain.Message, 0, len(raw))
	for _, value := range raw {
		var msg domain.Message
		if err := json.Unmarshal(value, &msg); err != nil {
			return nil, nil, errors.Internal("decoding archived message", err)
		}
		messages = append(messages, msg)
	}
	return messages, &lastKey, nil
}
