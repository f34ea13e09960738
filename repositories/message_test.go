package repositories

import (
	"fmt"
	"log/slog"
	"sort"
	"testing"
	"time"

	"readroom/domain"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/database"
	"github.com/stretchr/testify/require"
)

func Test_Record_And_Get_Sorted_Messages(t *testing.T) {
	req := require.New(t)
	_, _, badgerDB, blugeWriter, err := database.SetupBenchmark(database.DefaultPath)
	req.NoError(err)
	defer database.CleanupDB(badgerDB, blugeWriter)

	repository := NewMessageRepository(badgerDB, slog.Default(), nil)
	session := domain.SessionID("42")
	content := "this message will self destruct in 5 seconds"
	at := time.Now().UTC()
	diskMessages := []DiskMessage{
		{uuid.New(), session, "u1", "Alice", content, "en", at},
		{uuid.New(), session, "u2", "Bob", content, "en", at.Add(1 * time.Minute)},
		{uuid.New(), session, "u3", "Clara", content, "en", at.Add(2 * time.Minute)},
	}

	sortedDiskMessages := make([]DiskMessage, len(diskMessages))
	copy(sortedDiskMessages, diskMessages)
	sort.Slice(sortedDiskMessages, func(i, j int) bool {
		return sortedDiskMessages[i].At.After(sortedDiskMessages[j].At)
	})
	for _, dm := range diskMessages {
		err = repository.StoreMessage(dm)
		req.NoError(err)
	}

	// When fetching messages
	fetchedMessages, _, err := repository.GetMessages(session, nil)
	req.NoError(err)

	// Then the messages come back newest first
	req.Len(fetchedMessages, len(sortedDiskMessages))
	req.Equal(sortedDiskMessages, fetchedMessages)
}

func Test_Record_Multiple_Message_And_Limit(t *testing.T) {
	req := require.New(t)
	_, _, badgerDB, blugeWriter, err := database.SetupBenchmark(database.DefaultPath)
	req.NoError(err)
	defer database.CleanupDB(badgerDB, blugeWriter)

	limit := 2
	repository := NewMessageRepository(badgerDB, slog.Default(), &limit)
	session := domain.SessionID("42")
	content := "this message will self destruct in 5 seconds"
	at := time.Now().UTC()
	diskMessages := []DiskMessage{
		{uuid.New(), session, "u1", "Alice", content, "en", at},
		{uuid.New(), session, "u2", "Bob", content, "en", at.Add(1 * time.Minute)},
		{uuid.New(), session, "u3", "Clara", content, "en", at.Add(2 * time.Minute)},
	}
	for _, dm := range diskMessages {
		err = repository.StoreMessage(dm)
		req.NoError(err)
	}
	fetchedMessages, _, err := repository.GetMessages(session, nil)
	req.NoError(err)
	req.Len(fetchedMessages, limit)
}

func Test_MessageRepository_Pagination(t *testing.T) {
	req := require.New(t)
	_, _, badgerDB, blugeWriter, err := database.SetupBenchmark(database.DefaultPath)
	req.NoError(err)
	defer database.CleanupDB(badgerDB, blugeWriter)

	limit := 4
	repo := NewMessageRepository(badgerDB, slog.Default(), &limit)
	session := domain.SessionID("42")
	now := time.Now().UTC()

	// Seed 10 messages, oldest to newest
	for i := 1; i <= 10; i++ {
		err = repo.StoreMessage(DiskMessage{
			ID:         uuid.New(),
			Session:    session,
			Sender:     fmt.Sprintf("user_%d", i),
			SenderName: fmt.Sprintf("User %d", i),
			Content:    fmt.Sprintf("Message %d", i),
			At:         now.Add(time.Duration(i) * time.Minute),
		})
		req.NoError(err)
	}

	// --- PAGE 1 ---
	msgs1, cursor1, err := repo.GetMessages(session, nil)
	req.NoError(err)
	req.Len(msgs1, 4)
	req.Equal("user_10", msgs1[0].Sender) // Newest first
	req.Equal("user_7", msgs1[3].Sender)
	req.NotEmpty(cursor1)

	// --- PAGE 2 ---
	msgs2, cursor2, err := repo.GetMessages(session, cursor1)
	req.NoError(err)
	req.Len(msgs2, 4)
	// No duplicate across pages: page 2 starts at message 6
	req.Equal("user_6", msgs2[0].Sender)
	req.Equal("user_3", msgs2[3].Sender)
	req.NotEmpty(cursor2)

	// --- PAGE 3 (end) ---
	msgs3, _, err := repo.GetMessages(session, cursor2)
	req.NoError(err)
	req.Len(msgs3, 2)
	req.Equal("user_2", msgs3[0].Sender)
	req.Equal("user_1", msgs3[1].Sender)
}

func Test_MessageRepository_SessionsAreIsolated(t *testing.T) {
	req := require.New(t)
	_, _, badgerDB, blugeWriter, err := database.SetupBenchmark(database.DefaultPath)
	req.NoError(err)
	defer database.CleanupDB(badgerDB, blugeWriter)

	repo := NewMessageRepository(badgerDB, slog.Default(), nil)
	at := time.Now().UTC()

	err = repo.StoreMessage(DiskMessage{ID: uuid.New(), Session: "42", Sender: "u1", Content: "in 42", At: at})
	req.NoError(err)
	err = repo.StoreMessage(DiskMessage{ID: uuid.New(), Session: "43", Sender: "u2", Content: "in 43", At: at})
	req.NoError(err)

	fetched, _, err := repo.GetMessages("42", nil)
	req.NoError(err)
	req.Len(fetched, 1)
	req.Equal("in 42", fetched[0].Content)
}
