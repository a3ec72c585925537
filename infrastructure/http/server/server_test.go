package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"convo/dto"
	"convo/projection"
	"convo/repositories"
	"convo/runtime"
)

func newTestRouter(t *testing.T) (*gin.Engine, *repositories.InMemoryRepository) {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	repository := repositories.NewInMemoryRepository()
	registry := runtime.NewRegistry()
	coordinator := runtime.NewCoordinator(log, repository, registry, nil, nil)
	return NewRouter(log, repository, registry, coordinator, nil, 16), repository
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	request := httptest.NewRequest(method, path, reader)
	request.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

func decodeBody[T any](t *testing.T, recorder *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &out))
	return out
}

func createUserHTTP(t *testing.T, router *gin.Engine, username string) string {
	t.Helper()
	recorder := doJSON(t, router, http.MethodPost, "/users", dto.CreateUserRequest{
		Username:    username,
		DisplayName: username,
	})
	require.Equal(t, http.StatusCreated, recorder.Code)
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &created))
	return created.ID
}

func TestHTTP_Create_Group_Conversation_Scenario(t *testing.T) {
	req := require.New(t)
	router, _ := newTestRouter(t)
	sender := createUserHTTP(t, router, "sender")
	other := createUserHTTP(t, router, "other")
	name := "Team"

	recorder := doJSON(t, router, http.MethodPost, "/conversations", dto.CreateConversationRequest{
		ConversationType: "group",
		SenderID:         sender,
		Participants:     []string{sender, other},
		Name:             &name,
	})

	req.Equal(http.StatusCreated, recorder.Code)
	response := decodeBody[dto.ConversationResponse](t, recorder)
	req.Equal("Team", *response.Name)
	req.Len(response.Participants, 2)
	for _, participant := range response.Participants {
		if participant.UserID == sender {
			req.NotNil(participant.JoinedAt)
			req.NotNil(participant.LastReadAt)
		} else {
			req.Nil(participant.JoinedAt)
			req.Nil(participant.LastReadAt)
		}
	}
}

func TestHTTP_Create_Conversation_Unknown_Participant_Is_400(t *testing.T) {
	req := require.New(t)
	router, _ := newTestRouter(t)
	sender := createUserHTTP(t, router, "sender")

	recorder := doJSON(t, router, http.MethodPost, "/conversations", dto.CreateConversationRequest{
		ConversationType: "direct",
		SenderID:         sender,
		Participants:     []string{sender, "ghost"},
	})

	req.Equal(http.StatusBadRequest, recorder.Code)
	req.Contains(recorder.Body.String(), "participants do not exist")
}

func TestHTTP_Create_Conversation_Invalid_Type_Is_422(t *testing.T) {
	req := require.New(t)
	router, _ := newTestRouter(t)

	recorder := doJSON(t, router, http.MethodPost, "/conversations", map[string]any{
		"conversation_type": "broadcast",
		"sender_id":         "whoever",
		"participants":      []string{"whoever"},
	})

	req.Equal(http.StatusUnprocessableEntity, recorder.Code)
}

func TestHTTP_Get_Unknown_Conversation_Is_404(t *testing.T) {
	req := require.New(t)
	router, _ := newTestRouter(t)

	recorder := doJSON(t, router, http.MethodGet, "/conversations/0198c6b2-0000-7000-8000-000000000000", nil)

	req.Equal(http.StatusNotFound, recorder.Code)
}

func TestHTTP_Get_Malformed_Conversation_ID_Is_400(t *testing.T) {
	req := require.New(t)
	router, _ := newTestRouter(t)

	recorder := doJSON(t, router, http.MethodGet, "/conversations/not-a-uuid", nil)

	req.Equal(http.StatusBadRequest, recorder.Code)
}

func TestHTTP_Create_Message_Requires_Sender(t *testing.T) {
	req := require.New(t)
	router, _ := newTestRouter(t)
	sender := createUserHTTP(t, router, "sender")
	other := createUserHTTP(t, router, "other")

	created := doJSON(t, router, http.MethodPost, "/conversations", dto.CreateConversationRequest{
		ConversationType: "direct",
		SenderID:         sender,
		Participants:     []string{sender, other},
	})
	req.Equal(http.StatusCreated, created.Code)
	conversation := decodeBody[dto.ConversationResponse](t, created)

	recorder := doJSON(t, router, http.MethodPost, "/messages", dto.CreateMessageRequest{
		ConversationID: conversation.ID,
		Content:        "anonymous?",
	})

	req.Equal(http.StatusBadRequest, recorder.Code)
	req.Contains(recorder.Body.String(), "sender_id is required")
}

func TestHTTP_List_Messages_Pagination(t *testing.T) {
	req := require.New(t)
	router, _ := newTestRouter(t)
	sender := createUserHTTP(t, router, "sender")
	other := createUserHTTP(t, router, "other")

	created := doJSON(t, router, http.MethodPost, "/conversations", dto.CreateConversationRequest{
		ConversationType: "direct",
		SenderID:         sender,
		Participants:     []string{sender, other},
	})
	conversation := decodeBody[dto.ConversationResponse](t, created)

	for i := range 4 {
		recorder := doJSON(t, router, http.MethodPost, "/messages", dto.CreateMessageRequest{
			ConversationID: conversation.ID,
			SenderID:       sender,
			Content:        fmt.Sprintf("message %d", i+1),
		})
		req.Equal(http.StatusCreated, recorder.Code)
	}

	recorder := doJSON(t, router, http.MethodGet,
		fmt.Sprintf("/conversations/%s/messages?offset=1&limit=2", conversation.ID), nil)

	req.Equal(http.StatusOK, recorder.Code)
	var messages []struct {
		Content string `json:"content"`
	}
	req.NoError(json.Unmarshal(recorder.Body.Bytes(), &messages))
	req.Len(messages, 2)
	req.Equal("message 2", messages[0].Content)
	req.Equal("message 3", messages[1].Content)
}

func TestHTTP_Archive_Disabled_Is_404(t *testing.T) {
	req := require.New(t)
	router, _ := newTestRouter(t)

	recorder := doJSON(t, router, http.MethodGet,
		"/conversations/0198c6b2-0000-7000-8000-000000000000/archive", nil)

	req.Equal(http.StatusNotFound, recorder.Code)
	req.Contains(recorder.Body.String(), "archive is disabled")
}

func TestHTTP_Unread_Summaries(t *testing.T) {
	req := require.New(t)
	router, _ := newTestRouter(t)
	sender := createUserHTTP(t, router, "sender")
	other := createUserHTTP(t, router, "other")

	created := doJSON(t, router, http.MethodPost, "/conversations", dto.CreateConversationRequest{
		ConversationType: "direct",
		SenderID:         sender,
		Participants:     []string{sender, other},
	})
	conversation := decodeBody[dto.ConversationResponse](t, created)

	for range 3 {
		recorder := doJSON(t, router, http.MethodPost, "/messages", dto.CreateMessageRequest{
			ConversationID: conversation.ID,
			SenderID:       sender,
			Content:        "unread by the other side",
		})
		req.Equal(http.StatusCreated, recorder.Code)
	}

	recorder := doJSON(t, router, http.MethodGet, fmt.Sprintf("/users/%s/unread", other), nil)

	req.Equal(http.StatusOK, recorder.Code)
	summaries := decodeBody[[]projection.UnreadSummary](t, recorder)
	req.Len(summaries, 1)
	req.Equal(conversation.ID, summaries[0].ConversationID)
	req.Equal(3, summaries[0].Unread)

	// The sender reads everything they wrote themselves
	recorder = doJSON(t, router, http.MethodGet, fmt.Sprintf("/users/%s/unread", sender), nil)
	req.Equal(http.StatusOK, recorder.Code)
	summaries = decodeBody[[]projection.UnreadSummary](t, recorder)
	req.Len(summaries, 1)
	req.Zero(summaries[0].Unread)
}

func TestHTTP_Update_Participant_Read_Marker(t *testing.T) {
	req := require.New(t)
	router, repository := newTestRouter(t)
	sender := createUserHTTP(t, router, "sender")
	other := createUserHTTP(t, router, "other")

	created := doJSON(t, router, http.MethodPost, "/conversations", dto.CreateConversationRequest{
		ConversationType: "direct",
		SenderID:         sender,
		Participants:     []string{sender, other},
	})
	conversation := decodeBody[dto.ConversationResponse](t, created)

	recorder := doJSON(t, router, http.MethodPatch,
		fmt.Sprintf("/conversations/%s/participants/%s", conversation.ID, other),
		map[string]any{"last_read_at": "2026-08-30T12:00:00Z"})

	req.Equal(http.StatusOK, recorder.Code)

	agg, err := repository.ReadConversation(conversation.ID)
	req.NoError(err)
	for _, participant := range agg.Participants {
		if participant.UserID == other {
			req.NotNil(participant.LastReadAt)
		}
	}
}
