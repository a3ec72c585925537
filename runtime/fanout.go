package runtime

import (
	"context"
	"log/slog"

	"convo/contract"
	"convo/dto"
	"convo/moderation"
)

// Coordinator turns an inbound create-message request into persistence
// plus best-effort fan-out to every online participant. It is not a
// message broker: no retries, no acknowledgments, no inter-recipient
// ordering. The only guarantee is that a message is persisted before
// any delivery attempt.
//
// Coordinator is safe for concurrent use by many sessions.
type Coordinator struct {
	log        *slog.Logger
	repository contract.IRepository
	registry   contract.IRegistry
	moderator  *moderation.Moderator
	archive    contract.IMessageArchive
}

// NewCoordinator wires the delivery path. moderator and archive are
// optional; nil disables the corresponding stage.
func NewCoordinator(log *slog.Logger, repository contract.IRepository,
	registry contract.IRegistry, moderator *moderation.Moderator,
	archive contract.IMessageArchive) *Coordinator {
	return &Coordinator{
		log:        log,
		repository: repository,
		registry:   registry,
		moderator:  moderator,
		archive:    archive,
	}
}

// HandleInbound resolves the conversation, persists the message and
// delivers it to every participant's registered mailboxes, the sender's
// own included so their other devices stay consistent. The sender
// must be a participant of the conversation; a message from anyone else
// is dropped before persistence. Failures abandon delivery with a log
// entry only: the session and its connection are never affected.
func (c *Coordinator) HandleInbound(_ context.Context, userID string, req dto.CreateMessageRequest) {
	req.SenderID = userID

	agg, err := c.repository.ReadConversation(req.ConversationID)
	if err != nil {
		c.log.Warn("dropping message for unknown conversation",
			"conversation_id", req.ConversationID,
			"sender_id", userID,
			"error", err)
		return
	}

	member := false
	for _, participant := range agg.Participants {
		if participant.UserID == userID {
			member = true
			break
		}
	}
	if !member {
		c.log.Warn("dropping message from non-participant",
			"conversation_id", req.ConversationID,
			"sender_id", userID)
		return
	}

	if c.moderator != nil {
		req.Content = c.moderator.Censor(req.Content)
	}

	msg, err := c.repository.CreateMessage(req)
	if err != nil {
		c.log.Error("failed to persist message, abandoning delivery",
			"conversation_id", req.ConversationID,
			"sender_id", userID,
			"error", err)
		return
	}

	if c.archive != nil {
		if err := c.archive.Append(msg); err != nil {
			c.log.Warn("failed to archive message",
				"message_id", msg.ID,
				"error", err)
		}
	}

	for _, participant := range agg.Participants {
		c.registry.Deliver(participant.UserID, msg)
	}
}
