package repositories

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"convo/domain"
	"convo/dto"
	"convo/errors"
)

func seedMessages(t *testing.T, repository *InMemoryRepository, conversationID uuid.UUID, count int) []domain.Message {
	t.Helper()
	messages := make([]domain.Message, 0, count)
	for i := range count {
		msg, err := repository.CreateMessage(dto.CreateMessageRequest{
			ConversationID: conversationID,
			SenderID:       "alice",
			Content:        fmt.Sprintf("message %d", i+1),
		})
		require.NoError(t, err)
		messages = append(messages, msg)
	}
	return messages
}

func TestMessage_Create_And_Read(t *testing.T) {
	req := require.New(t)
	repository := NewInMemoryRepository()
	conversationID := uuid.New()

	created, err := repository.CreateMessage(dto.CreateMessageRequest{
		ConversationID: conversationID,
		SenderID:       "alice",
		Content:        "hello",
	})
	req.NoError(err)
	req.Equal(uuid.Version(7), created.ID.Version())
	req.Equal("alice", created.SenderID)
	req.Nil(created.UpdatedAt)

	fetched, err := repository.ReadMessage(created.ID)
	req.NoError(err)
	req.Equal(created, fetched)
}

func TestMessage_Read_Unknown_Is_NotFound(t *testing.T) {
	req := require.New(t)
	repository := NewInMemoryRepository()

	_, err := repository.ReadMessage(uuid.New())

	req.Error(err)
	req.True(errors.IsNotFound(err))
}

func TestMessage_List_Is_Ordered_And_Paged(t *testing.T) {
	req := require.New(t)
	repository := NewInMemoryRepository()
	conversationID := uuid.New()

	// Given M1..M4 in creation order, plus noise in another conversation
	seeded := seedMessages(t, repository, conversationID, 4)
	seedMessages(t, repository, uuid.New(), 2)

	// When listing with offset 1 and limit 2
	offset, limit := 1, 2
	page, err := repository.ListMessages(conversationID, dto.Pagination{Offset: &offset, Limit: &limit})

	// Then the window is [M2, M3]
	req.NoError(err)
	req.Len(page, 2)
	req.Equal(seeded[1], page[0])
	req.Equal(seeded[2], page[1])
}

func TestMessage_List_Out_Of_Range_Offset_Is_Empty(t *testing.T) {
	req := require.New(t)
	repository := NewInMemoryRepository()
	conversationID := uuid.New()
	seedMessages(t, repository, conversationID, 2)

	offset := 10
	page, err := repository.ListMessages(conversationID, dto.Pagination{Offset: &offset})

	req.NoError(err)
	req.Empty(page)
}

func TestMessage_List_Negative_Offset_Is_Clamped(t *testing.T) {
	req := require.New(t)
	repository := NewInMemoryRepository()
	conversationID := uuid.New()
	seeded := seedMessages(t, repository, conversationID, 2)

	offset, limit := -5, -1
	page, err := repository.ListMessages(conversationID, dto.Pagination{Offset: &offset, Limit: &limit})

	req.NoError(err)
	req.Equal(seeded, page)
}

func TestMessage_List_Without_Pagination_Returns_All(t *testing.T) {
	req := require.New(t)
	repository := NewInMemoryRepository()
	conversationID := uuid.New()
	seeded := seedMessages(t, repository, conversationID, 3)

	page, err := repository.ListMessages(conversationID, dto.Pagination{})

	req.NoError(err)
	req.Equal(seeded, page)
	req.True(lo.EveryBy(page, func(m domain.Message) bool {
		return m.ConversationID == conversationID
	}))
}

func TestMessage_Update_Content(t *testing.T) {
	req := require.New(t)
	repository := NewInMemoryRepository()
	seeded := seedMessages(t, repository, uuid.New(), 1)
	content := "edited"

	updated, err := repository.UpdateMessage(seeded[0].ID, dto.UpdateMessageRequest{Content: &content})

	req.NoError(err)
	req.Equal(content, updated.Content)
	req.NotNil(updated.UpdatedAt)
}

func TestMessage_Delete_Is_Idempotent(t *testing.T) {
	req := require.New(t)
	repository := NewInMemoryRepository()
	seeded := seedMessages(t, repository, uuid.New(), 1)

	req.NoError(repository.DeleteMessage(seeded[0].ID))

	_, err := repository.ReadMessage(seeded[0].ID)
	req.True(errors.IsNotFound(err))

	req.NoError(repository.DeleteMessage(seeded[0].ID))
}
