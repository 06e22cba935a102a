package service

import (
	"context"

	"github.com/apell0/managerspelet/internal/core"
	"github.com/apell0/managerspelet/internal/world"
)

// MailList returns every mail message for one team, newest first.
func (s *Service) MailList(ctx context.Context, careerID, teamID string) Result {
	w, err := s.loadWorld(ctx, careerID)
	if err != nil {
		return Fail(err)
	}
	msgs := w.Mailbox[teamID]
	out := make([]core.MailMessage, len(msgs))
	for i := range msgs {
		out[i] = msgs[len(msgs)-1-i]
	}
	return Ok(out)
}

// MailRead marks one message read.
func (s *Service) MailRead(ctx context.Context, careerID, teamID string, messageID int) Result {
	return s.WithWorld(ctx, careerID, true, func(w *world.GameState) (any, error) {
		msgs := w.Mailbox[teamID]
		for i := range msgs {
			if msgs[i].ID == messageID {
				msgs[i].Read = true
				return msgs[i], nil
			}
		}
		return nil, core.NewNotFoundError("mail message", teamID)
	})
}
