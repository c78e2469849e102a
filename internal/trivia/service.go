package trivia

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/triviahub/trivia-api/internal/logging"
)

// Service implements the question-bank operations over the category and
// question stores.
type Service struct {
	categories CategoryStore
	questions  QuestionStore
	pageSize   int
	logger     zerolog.Logger
}

// ServiceOptions tunes listing behavior.
type ServiceOptions struct {
	// PageSize overrides DefaultPageSize when positive.
	PageSize int
}

// NewService constructs the question service.
func NewService(categories CategoryStore, questions QuestionStore, opts ServiceOptions, logger zerolog.Logger) *Service {
	size := opts.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	return &Service{
		categories: categories,
		questions:  questions,
		pageSize:   size,
		logger:     logger.With().Str("component", "trivia_service").Logger(),
	}
}

// ListCategories returns all categories ordered by ascending id.
// An empty category table is reported as ErrNotFound.
func (s *Service) ListCategories(ctx context.Context) (CategoryList, error) {
	cats, err := s.categories.ListOrdered(ctx)
	if err != nil {
		return CategoryList{}, fmt.Errorf("list categories: %w", err)
	}
	if len(cats) == 0 {
		return CategoryList{}, ErrNotFound
	}
	return CategoryList{Categories: cats, Total: len(cats)}, nil
}

// ListQuestions returns the given 1-based page of all questions, the total
// question count, and the category labels. An empty page is ErrNotFound.
func (s *Service) ListQuestions(ctx context.Context, page int) (QuestionPage, error) {
	questions, err := s.questions.ListOrdered(ctx)
	if err != nil {
		return QuestionPage{}, fmt.Errorf("list questions: %w", err)
	}
	current := Paginate(questions, page, s.pageSize)
	if len(current) == 0 {
		return QuestionPage{}, ErrNotFound
	}
	labels, err := s.categoryLabels(ctx)
	if err != nil {
		return QuestionPage{}, err
	}
	return QuestionPage{Questions: current, Total: len(questions), Labels: labels}, nil
}

// SearchQuestions returns the given page of questions whose text contains
// term, matched case-insensitively. An empty result page is ErrNotFound.
func (s *Service) SearchQuestions(ctx context.Context, term string, page int) (QuestionPage, error) {
	matched, err := s.questions.Search(ctx, term)
	if err != nil {
		return QuestionPage{}, fmt.Errorf("search questions: %w", err)
	}
	current := Paginate(matched, page, s.pageSize)
	if len(current) == 0 {
		return QuestionPage{}, ErrNotFound
	}
	return QuestionPage{Questions: current, Total: len(matched)}, nil
}

// AddQuestion validates and persists a new question, returning its assigned
// id and a refreshed first-page listing. Any zero-valued field fails with
// ErrUnprocessable and leaves the store untouched.
func (s *Service) AddQuestion(ctx context.Context, q NewQuestion) (AddResult, error) {
	if q.Question == "" || q.Answer == "" || q.Difficulty == 0 || q.Category == 0 {
		return AddResult{}, fmt.Errorf("missing required question fields: %w", ErrUnprocessable)
	}
	id, err := s.questions.Insert(ctx, q)
	if err != nil {
		return AddResult{}, fmt.Errorf("insert question: %w", err)
	}
	s.log(ctx).Info().Int("question_id", id).Int("category", q.Category).Msg("question created")

	page, err := s.ListQuestions(ctx, 1)
	if err != nil {
		return AddResult{}, err
	}
	return AddResult{Created: id, Page: page}, nil
}

// DeleteQuestion removes a question by id and returns a refreshed first-page
// listing. A missing id fails with ErrUnprocessable.
func (s *Service) DeleteQuestion(ctx context.Context, id int) (DeleteResult, error) {
	deleted, err := s.questions.Delete(ctx, id)
	if err != nil {
		return DeleteResult{}, fmt.Errorf("delete question %d: %w", id, err)
	}
	if !deleted {
		return DeleteResult{}, fmt.Errorf("question %d does not exist: %w", id, ErrUnprocessable)
	}
	s.log(ctx).Info().Int("question_id", id).Msg("question deleted")

	page, err := s.ListQuestions(ctx, 1)
	if err != nil {
		return DeleteResult{}, err
	}
	return DeleteResult{Deleted: id, Page: page}, nil
}

// QuestionsByCategory returns the given page of questions belonging to the
// category identified by its external (0-based) id, plus the full category
// list. An empty page is ErrNotFound.
func (s *Service) QuestionsByCategory(ctx context.Context, externalID, page int) (CategoryQuestions, error) {
	stored := ExternalToStoredCategoryID(externalID)
	matched, err := s.questions.ListByCategory(ctx, stored)
	if err != nil {
		return CategoryQuestions{}, fmt.Errorf("list questions for category %d: %w", stored, err)
	}
	current := Paginate(matched, page, s.pageSize)
	if len(current) == 0 {
		return CategoryQuestions{}, ErrNotFound
	}
	cats, err := s.categories.ListOrdered(ctx)
	if err != nil {
		return CategoryQuestions{}, fmt.Errorf("list categories: %w", err)
	}
	return CategoryQuestions{
		Questions:       current,
		Total:           len(matched),
		CurrentCategory: externalID,
		Categories:      cats,
	}, nil
}

// log prefers the request-scoped logger injected by the access-log
// middleware over the service's component logger.
func (s *Service) log(ctx context.Context) *zerolog.Logger {
	if logger := logging.FromContext(ctx); logger.GetLevel() != zerolog.Disabled {
		return &logger
	}
	return &s.logger
}

func (s *Service) categoryLabels(ctx context.Context) ([]string, error) {
	cats, err := s.categories.ListOrdered(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	labels := make([]string, 0, len(cats))
	for _, c := range cats {
		labels = append(labels, c.Type)
	}
	return labels, nil
}
