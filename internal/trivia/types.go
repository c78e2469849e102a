package trivia

import (
	"context"
	"errors"
)

// Sentinel errors mapped to HTTP statuses at the handler boundary.
var (
	ErrNotFound      = errors.New("resource not found")
	ErrUnprocessable = errors.New("unprocessable")
)

// Category is a topical grouping for questions. Categories are seeded by
// migration and immutable at runtime.
type Category struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

// Question is a single quiz item.
type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// NewQuestion carries the fields required to create a question. The zero
// value of any field counts as missing.
type NewQuestion struct {
	Question   string
	Answer     string
	Difficulty int
	Category   int
}

// CategoryStore provides read access to seeded categories.
type CategoryStore interface {
	ListOrdered(ctx context.Context) ([]Category, error)
}

// QuestionStore provides persistence for questions. All listings are ordered
// by ascending id.
type QuestionStore interface {
	ListOrdered(ctx context.Context) ([]Question, error)
	Search(ctx context.Context, term string) ([]Question, error)
	ListByCategory(ctx context.Context, storedCategoryID int) ([]Question, error)
	Insert(ctx context.Context, q NewQuestion) (int, error)
	Delete(ctx context.Context, id int) (bool, error)
}

// CategoryList is the result of listing all categories.
type CategoryList struct {
	Categories []Category
	Total      int
}

// QuestionPage is one page of questions plus listing metadata. Labels holds
// the distinct category type labels ordered by category id; it is empty for
// search results, which do not carry categories.
type QuestionPage struct {
	Questions []Question
	Total     int
	Labels    []string
}

// CategoryQuestions is a page of questions restricted to one category.
// CurrentCategory echoes the external (0-based) category id of the request.
type CategoryQuestions struct {
	Questions       []Question
	Total           int
	CurrentCategory int
	Categories      []Category
}

// AddResult reports a created question id together with a refreshed
// first-page listing.
type AddResult struct {
	Created int
	Page    QuestionPage
}

// DeleteResult reports a deleted question id together with a refreshed
// first-page listing.
type DeleteResult struct {
	Deleted int
	Page    QuestionPage
}

// ExternalToStoredCategoryID converts a category id as it appears on the
// external API surface (0-based, used by /categories/{id}/questions) to the
// 1-based id stored on question rows. Keeping the off-by-one in one place is
// deliberate; see DESIGN.md.
func ExternalToStoredCategoryID(external int) int {
	return external + 1
}
