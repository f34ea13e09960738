package repositories

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"readroom/domain"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/database"
	"github.com/stretchr/testify/require"
)

func Test_Index_And_Search_By_Content(t *testing.T) {
	req := require.New(t)
	_, _, badgerDB, blugeWriter, err := database.SetupBenchmark(database.DefaultPath)
	req.NoError(err)
	defer database.CleanupDB(badgerDB, blugeWriter)

	index := NewMessageIndex(blugeWriter, slog.Default())
	at := time.Now().UTC().Truncate(time.Nanosecond)

	target := DiskMessage{
		ID:         uuid.New(),
		Session:    "42",
		Sender:     "u1",
		SenderName: "Alice",
		Content:    "the dragon guards the treasure",
		Language:   "en",
		At:         at,
	}
	req.NoError(index.Index(target))
	req.NoError(index.Index(DiskMessage{
		ID:      uuid.New(),
		Session: "42",
		Sender:  "u2",
		Content: "nothing interesting here",
		At:      at,
	}))

	// When searching for a word of the first message
	hits, err := index.Search(context.Background(), "42", "dragon", 10)
	req.NoError(err)

	// Then only the matching message comes back, fully reconstructed
	req.Len(hits, 1)
	req.Equal(target.ID, hits[0].ID)
	req.Equal(target.Content, hits[0].Content)
	req.Equal(target.SenderName, hits[0].SenderName)
}

func Test_Search_Is_Scoped_To_Session(t *testing.T) {
	req := require.New(t)
	_, _, badgerDB, blugeWriter, err := database.SetupBenchmark(database.DefaultPath)
	req.NoError(err)
	defer database.CleanupDB(badgerDB, blugeWriter)

	index := NewMessageIndex(blugeWriter, slog.Default())
	at := time.Now().UTC()

	req.NoError(index.Index(DiskMessage{
		ID: uuid.New(), Session: "42", Sender: "u1", Content: "dragon sighting", At: at,
	}))
	req.NoError(index.Index(DiskMessage{
		ID: uuid.New(), Session: "43", Sender: "u2", Content: "dragon sighting", At: at,
	}))

	hits, err := index.Search(context.Background(), domain.SessionID("42"), "dragon", 10)
	req.NoError(err)
	req.Len(hits, 1)
	req.Equal(domain.SessionID("42"), hits[0].Session)
}

func Test_Search_Honors_Limit(t *testing.T) {
	req := require.New(t)
	_, _, badgerDB, blugeWriter, err := database.SetupBenchmark(database.DefaultPath)
	req.NoError(err)
	defer database.CleanupDB(badgerDB, blugeWriter)

	index := NewMessageIndex(blugeWriter, slog.Default())
	at := time.Now().UTC()

	for i := 0; i < 5; i++ {
		req.NoError(index.Index(DiskMessage{
			ID: uuid.New(), Session: "42", Sender: "u1", Content: "dragon dragon dragon", At: at,
		}))
	}

	hits, err := index.Search(context.Background(), "42", "dragon", 2)
	req.NoError(err)
	req.Len(hits, 2)
}
