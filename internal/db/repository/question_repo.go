package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/triviahub/trivia-api/internal/trivia"
)

const questionColumns = `id, question, answer, category, difficulty`

// QuestionRepository persists and queries questions.
type QuestionRepository struct {
	db DBTX
}

// NewQuestionRepository wraps a connection handle for question access.
func NewQuestionRepository(db DBTX) *QuestionRepository {
	return &QuestionRepository{db: db}
}

var _ trivia.QuestionStore = (*QuestionRepository)(nil)

// ListOrdered returns every question by ascending id.
func (r *QuestionRepository) ListOrdered(ctx context.Context) ([]trivia.Question, error) {
	rows, err := r.db.Query(ctx, `SELECT `+questionColumns+` FROM questions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}
	return collectQuestions(rows)
}

// Search returns questions whose text contains term, case-insensitively,
// by ascending id.
func (r *QuestionRepository) Search(ctx context.Context, term string) ([]trivia.Question, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+questionColumns+` FROM questions WHERE question ILIKE '%' || $1 || '%' ORDER BY id`,
		term)
	if err != nil {
		return nil, fmt.Errorf("search questions: %w", err)
	}
	return collectQuestions(rows)
}

// ListByCategory returns questions stored under the given 1-based category
// id, by ascending id.
func (r *QuestionRepository) ListByCategory(ctx context.Context, storedCategoryID int) ([]trivia.Question, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+questionColumns+` FROM questions WHERE category = $1 ORDER BY id`,
		storedCategoryID)
	if err != nil {
		return nil, fmt.Errorf("query questions by category: %w", err)
	}
	return collectQuestions(rows)
}

// Insert persists a new question and returns its assigned id.
func (r *QuestionRepository) Insert(ctx context.Context, q trivia.NewQuestion) (int, error) {
	var id int
	err := r.db.QueryRow(ctx,
		`INSERT INTO questions (question, answer, category, difficulty)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		q.Question, q.Answer, q.Category, q.Difficulty).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert question: %w", err)
	}
	return id, nil
}

// Delete removes a question by id, reporting whether a row existed.
func (r *QuestionRepository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM questions WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete question: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func collectQuestions(rows pgx.Rows) ([]trivia.Question, error) {
	defer rows.Close()
	var qs []trivia.Question
	for rows.Next() {
		var q trivia.Question
		if err := rows.Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		qs = append(qs, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate questions: %w", err)
	}
	return qs, nil
}
