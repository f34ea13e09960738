//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"fmt"
	"log/slog"
	"time"

	"readroom/domain"
	pb "readroom/proto/storage"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"google.golang.org/protobuf/proto"
)

type IMessageRepository interface {
	StoreMessage(message DiskMessage) error
	GetMessages(session domain.SessionID, cursor *string) ([]DiskMessage, *string, error)
}

type MessageRepository struct {
	db            *badger.DB
	log           *slog.Logger
	limitMessages *int
}

func NewMessageRepository(db *badger.DB, log *slog.Logger, limitMessages *int) MessageRepository {
	return MessageRepository{db: db, log: log, limitMessages: limitMessages}
}

type DiskMessage struct {
	ID         uuid.UUID
	Session    domain.SessionID
	Sender     string
	SenderName string
	Content    string
	Language   string
	At         time.Time
}

// StoreMessage persists a chat message in BadgerDB.
// The key is formatted as "chat:{session_id}:{timestamp_padded}:{uuid}" to:
//  1. Ensure chronological sorting using 19-digit zero padding (lexicographical order).
//  2. Prevent data loss by using UUID as a collision disconnector if two messages
//     arrive at the same nanosecond.
func (m MessageRepository) StoreMessage(message DiskMessage) error {
	key := fmt.Sprintf("chat:%s:%019d:%s",
		message.Session,
		message.At.UnixNano(),
		message.ID,
	)
	bytes, err := proto.Marshal(lo.ToPtr(fromDiskMessage(message)))
	if err != nil {
		return err
	}
	return m.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

// GetMessages retrieves messages for a session using a reverse prefix scan.
// Thanks to the padded timestamp in the key, messages come back newest first.
// It stops collecting messages once the configured limitMessages is reached;
// the returned cursor resumes the scan on the next call.
func (m MessageRepository) GetMessages(session domain.SessionID, cursor *string) ([]DiskMessage, *string, error) {
	var byteMessages [][]byte
	var diskMessages []DiskMessage
	var lastKey string
	err := m.db.View(func(txn *badger.Txn) error {
		prefixStr := fmt.Sprintf("chat:%s:", session)
		prefix := []byte(prefixStr)
		prefixLen := len(prefixStr)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		var seekKey []byte
		switch cursor {
		case nil:
			// Seek past every possible timestamp, then walk backwards.
			seekKey = append(prefix, []byte("9999999999999999999")...)
		default:
			seekKey = append(prefix, []byte(*cursor)...)
		}

		it.Seek(seekKey)

		if cursor != nil && it.ValidForPrefix(prefix) {
			it.Next()
		}

		for ; it.ValidForPrefix(prefix); it.Next() {
			if m.limitMessages != nil && len(byteMessages) == *m.limitMessages {
				m.log.Debug(fmt.Sprintf("Maximum of %d messages reached", *m.limitMessages))
				break
			}
			item := it.Item()
			// Memorize the cursor part of the actual key
			lastKey = string(item.Key()[prefixLen:])
			err := item.Value(func(value []byte) error {
				byteMessages = append(byteMessages, append([]byte(nil), value...))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	for _, b := range byteMessages {
		var messagePb pb.Message
		if err = proto.Unmarshal(b, &messagePb); err != nil {
			return nil, nil, err
		}
		message, err := toDiskMessage(&messagePb)
		if err != nil {
			return nil, nil, err
		}
		diskMessages = append(diskMessages, message)
	}
	return diskMessages, &lastKey, err
}

func fromDiskMessage(message DiskMessage) pb.Message {
	return pb.Message{
		Id:         message.ID.String(),
		Session:    string(message.Session),
		Sender:     message.Sender,
		SenderName: message.SenderName,
		Content:    message.Content,
		Language:   message.Language,
		At:         message.At.UnixNano(),
	}
}

func toDiskMessage(messagePb *pb.Message) (DiskMessage, error) {
	parsedID, err := uuid.Parse(messagePb.Id)
	if err != nil {
		return DiskMessage{}, err
	}
	return DiskMessage{
		ID:         parsedID,
		Session:    domain.SessionID(messagePb.Session),
		Sender:     messagePb.Sender,
		SenderName: messagePb.SenderName,
		Content:    messagePb.Content,
		Language:   messagePb.Language,
		At:         time.Unix(0, messagePb.At).UTC(),
	}, nil
}
