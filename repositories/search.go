//go:generate go run go.uber.org/mock/mockgen -source=search.go -destination=../mocks/mock_message_index.go -package=mocks
package repositories

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"readroom/domain"

	"github.com/blugelabs/bluge"
	"github.com/google/uuid"
)

type IMessageIndex interface {
	Index(message DiskMessage) error
	Search(ctx context.Context, session domain.SessionID, terms string, limit int) ([]DiskMessage, error)
}

// MessageIndex maintains a Bluge full-text index over chat messages so a
// session's history can be searched by content.
type MessageIndex struct {
	writer *bluge.Writer
	log    *slog.Logger
}

func NewMessageIndex(writer *bluge.Writer, log *slog.Logger) MessageIndex {
	return MessageIndex{writer: writer, log: log}
}

func (i MessageIndex) Index(message DiskMessage) error {
	doc := bluge.NewDocument(message.ID.String()).
		AddField(bluge.NewKeywordField("session", string(message.Session)).StoreValue()).
		AddField(bluge.NewKeywordField("sender", message.Sender).StoreValue()).
		AddField(bluge.NewKeywordField("sender_name", message.SenderName).StoreValue()).
		AddField(bluge.NewTextField("content", message.Content).StoreValue()).
		AddField(bluge.NewKeywordField("language", message.Language).StoreValue()).
		AddField(bluge.NewStoredOnlyField("at_ns", []byte(strconv.FormatInt(message.At.UnixNano(), 10))))
	return i.writer.Update(doc.ID(), doc)
}

// Search matches terms against message contents within one session and
// rebuilds the hits from stored fields, best match first.
func (i MessageIndex) Search(ctx context.Context, session domain.SessionID, terms string, limit int) ([]DiskMessage, error) {
	reader, err := i.writer.Reader()
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := reader.Close(); err != nil {
			i.log.Warn("Failed to close index reader", "error", err)
		}
	}()

	query := bluge.NewBooleanQuery().
		AddMust(bluge.NewMatchQuery(terms).SetField("content")).
		AddMust(bluge.NewTermQuery(string(session)).SetField("session"))

	request := bluge.NewTopNSearch(limit, query)
	iterator, err := reader.Search(ctx, request)
	if err != nil {
		return nil, err
	}

	var hits []DiskMessage
	for {
		match, err := iterator.Next()
		if err != nil {
			return nil, err
		}
		if match == nil {
			return hits, nil
		}

		var hit DiskMessage
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			switch field {
			case "_id":
				hit.ID, _ = uuid.Parse(string(value))
			case "session":
				hit.Session = domain.SessionID(value)
			case "sender":
				hit.Sender = string(value)
			case "sender_name":
				hit.SenderName = string(value)
			case "content":
				hit.Content = string(value)
			case "language":
				hit.Language = string(value)
			case "at_ns":
				if ns, err := strconv.ParseInt(string(value), 10, 64); err == nil {
					hit.At = time.Unix(0, ns).UTC()
				}
			}
			return true
		})
		if err != nil {
			return nil, fmt.Errorf("visiting stored fields: %w", err)
		}
		hits = append(hits, hit)
	}
}
