package trivia

import (
	"context"
	"fmt"
	"math/rand/v2"
)

// AnyCategory selects the whole question bank as the quiz pool.
const AnyCategory = 0

// NextQuizQuestion draws one question, uniformly at random, from the pool
// identified by the stored (1-based) category id, skipping every id in
// previous. AnyCategory widens the pool to all questions. A nil question with
// a nil error means the pool is exhausted and the quiz is over.
//
// The pool is the full matching set, not a single listing page, so every
// eligible question is reachable. Session state lives entirely in the
// caller-supplied previous set.
func (s *Service) NextQuizQuestion(ctx context.Context, previous []int, categoryID int) (*Question, error) {
	var (
		pool []Question
		err  error
	)
	if categoryID == AnyCategory {
		pool, err = s.questions.ListOrdered(ctx)
	} else {
		pool, err = s.questions.ListByCategory(ctx, categoryID)
	}
	if err != nil {
		return nil, fmt.Errorf("load quiz pool: %w", err)
	}
	return drawUnseen(pool, previous), nil
}

// drawUnseen filters out previously-asked ids and draws uniformly from the
// remainder. Empty remainder means exhaustion.
func drawUnseen(pool []Question, previous []int) *Question {
	seen := make(map[int]struct{}, len(previous))
	for _, id := range previous {
		seen[id] = struct{}{}
	}
	remaining := make([]Question, 0, len(pool))
	for _, q := range pool {
		if _, asked := seen[q.ID]; !asked {
			remaining = append(remaining, q)
		}
	}
	if len(remaining) == 0 {
		return nil
	}
	pick := remaining[rand.IntN(len(remaining))]
	return &pick
}
