package trivia

import (
	"context"
	"sort"
	"strings"
)

// stubCategoryStore serves a fixed category list.
type stubCategoryStore struct {
	cats []Category
	err  error
}

func (s *stubCategoryStore) ListOrdered(ctx context.Context) ([]Category, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]Category, len(s.cats))
	copy(out, s.cats)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// memQuestionStore is an in-memory QuestionStore mirroring the SQL
// semantics of the pgx repository (id ordering, ILIKE search).
type memQuestionStore struct {
	questions map[int]Question
	nextID    int
}

func newMemQuestionStore(questions ...Question) *memQuestionStore {
	s := &memQuestionStore{questions: map[int]Question{}, nextID: 1}
	for _, q := range questions {
		s.questions[q.ID] = q
		if q.ID >= s.nextID {
			s.nextID = q.ID + 1
		}
	}
	return s
}

func (s *memQuestionStore) ordered() []Question {
	out := make([]Question, 0, len(s.questions))
	for _, q := range s.questions {
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *memQuestionStore) ListOrdered(ctx context.Context) ([]Question, error) {
	return s.ordered(), nil
}

func (s *memQuestionStore) Search(ctx context.Context, term string) ([]Question, error) {
	var out []Question
	for _, q := range s.ordered() {
		if strings.Contains(strings.ToLower(q.Question), strings.ToLower(term)) {
			out = append(out, q)
		}
	}
	return out, nil
}

func (s *memQuestionStore) ListByCategory(ctx context.Context, storedCategoryID int) ([]Question, error) {
	var out []Question
	for _, q := range s.ordered() {
		if q.Category == storedCategoryID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (s *memQuestionStore) Insert(ctx context.Context, q NewQuestion) (int, error) {
	id := s.nextID
	s.nextID++
	s.questions[id] = Question{
		ID:         id,
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.Category,
		Difficulty: q.Difficulty,
	}
	return id, nil
}

func (s *memQuestionStore) Delete(ctx context.Context, id int) (bool, error) {
	if _, ok := s.questions[id]; !ok {
		return false, nil
	}
	delete(s.questions, id)
	return true, nil
}

func seededCategories() []Category {
	return []Category{
		{ID: 1, Type: "Science"},
		{ID: 2, Type: "Art"},
		{ID: 3, Type: "Geography"},
		{ID: 4, Type: "History"},
		{ID: 5, Type: "Entertainment"},
		{ID: 6, Type: "Sports"},
	}
}
