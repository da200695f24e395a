package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	repo "github.com/devforum/backend/internal/domain/repository"
)

// VoteService applies per-user vote casts onto answer aggregate scores.
//
// The user's ledger keeps the last vote cast per answer; the delta between
// the incoming vote and that entry is what gets applied to the aggregate.
// Re-casting the same vote is therefore a no-op on the score, and flipping a
// vote moves the score by two, without ever re-scanning all votes.
type VoteService struct {
	Users   repo.UserRepository
	Answers repo.AnswerRepository
	Tx      repo.TxRunner
	Logger  *logrus.Logger
}

func NewVoteService(users repo.UserRepository, answers repo.AnswerRepository, tx repo.TxRunner, logger *logrus.Logger) *VoteService {
	return &VoteService{Users: users, Answers: answers, Tx: tx, Logger: logger}
}

type CastVoteInput struct {
	UserID   string
	AnswerID string
	Vote     int
	// Title and Description, when non-empty, update the answer content in the
	// same call (the update-answer endpoint carries both).
	Title       string
	Description string
}

// CastVote records the vote in the user's ledger and applies the delta to the
// answer's aggregate score. Ledger and aggregate are persisted in a single
// transaction; the locked rows serialize concurrent casts on the same answer.
// Voting on one's own answer is not blocked.
func (s *VoteService) CastVote(ctx context.Context, in CastVoteInput) (int, error) {
	if in.Vote != 1 && in.Vote != -1 {
		return 0, ErrInvalidVoteValue
	}

	var newScore int
	err := s.Tx.WithinTx(ctx, func(ctx context.Context) error {
		u, err := s.Users.GetByIDForUpdate(ctx, in.UserID)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		a, err := s.Answers.GetByIDForUpdate(ctx, in.AnswerID)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return ErrAnswerNotFound
			}
			return err
		}

		previous := u.VoteOn(in.AnswerID)
		delta := in.Vote - previous

		a.Votes += delta
		if in.Title != "" {
			a.Title = in.Title
		}
		if in.Description != "" {
			a.Description = in.Description
		}
		u.SetVote(in.AnswerID, in.Vote)

		if err := s.Answers.Update(ctx, a); err != nil {
			return err
		}
		if err := s.Users.Update(ctx, u); err != nil {
			return err
		}
		newScore = a.Votes
		return nil
	})
	if err != nil {
		return 0, err
	}

	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{
			"user_id":   in.UserID,
			"answer_id": in.AnswerID,
			"vote":      in.Vote,
			"score":     newScore,
		}).Debug("vote cast")
	}
	return newScore, nil
}
