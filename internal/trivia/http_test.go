package trivia

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandlers(t *testing.T, store *memQuestionStore) *HTTPHandlers {
	t.Helper()
	svc := NewService(
		&stubCategoryStore{cats: seededCategories()},
		store,
		ServiceOptions{},
		zerolog.New(io.Discard),
	)
	return NewHTTPHandlers(svc, zerolog.New(io.Discard))
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestIndexWelcome(t *testing.T) {
	h := newTestHandlers(t, newMemQuestionStore())

	rec := httptest.NewRecorder()
	h.Index(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["message"])
}

func TestIndexUnknownPathIs404Envelope(t *testing.T) {
	h := newTestHandlers(t, newMemQuestionStore())

	rec := httptest.NewRecorder()
	h.Index(rec, httptest.NewRequest(http.MethodGet, "/no/such/route", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, float64(404), body["error"])
	assert.Equal(t, "resource not found", body["message"])
}

func TestGetCategories(t *testing.T) {
	h := newTestHandlers(t, newMemQuestionStore())

	rec := httptest.NewRecorder()
	h.Categories(rec, httptest.NewRequest(http.MethodGet, "/categories", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(6), body["total_categories"])
	assert.Len(t, body["categories"], 6)
}

func TestGetQuestionsFirstPage(t *testing.T) {
	h := newTestHandlers(t, newMemQuestionStore(sampleQuestions(12)...))

	rec := httptest.NewRecorder()
	h.Questions(rec, httptest.NewRequest(http.MethodGet, "/questions", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(12), body["total_questions"])
	assert.Len(t, body["questions"], 10)
	assert.Len(t, body["categories"], 6)
	assert.Nil(t, body["current_category"])
}

func TestGetQuestionsPagePastEndIs404(t *testing.T) {
	h := newTestHandlers(t, newMemQuestionStore(sampleQuestions(12)...))

	rec := httptest.NewRecorder()
	h.Questions(rec, httptest.NewRequest(http.MethodGet, "/questions?page=1000", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "resource not found", body["message"])
}

func TestGetQuestionsInvalidPageFallsBackToFirst(t *testing.T) {
	h := newTestHandlers(t, newMemQuestionStore(sampleQuestions(3)...))

	rec := httptest.NewRecorder()
	h.Questions(rec, httptest.NewRequest(http.MethodGet, "/questions?page=abc", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Len(t, body["questions"], 3)
}

func TestPostQuestionsAdd(t *testing.T) {
	h := newTestHandlers(t, newMemQuestionStore(sampleQuestions(3)...))

	payload := `{"question":"x","answer":"y","difficulty":5,"category":1}`
	rec := httptest.NewRecorder()
	h.Questions(rec, httptest.NewRequest(http.MethodPost, "/questions", strings.NewReader(payload)))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Greater(t, body["created"], float64(0))
	assert.Equal(t, float64(4), body["total_questions"])
	assert.NotEmpty(t, body["questions"])
	assert.NotEmpty(t, body["categories"])
}

func TestPostQuestionsMissingFieldIs422(t *testing.T) {
	store := newMemQuestionStore(sampleQuestions(3)...)
	h := newTestHandlers(t, store)

	payload := `{"answer":"y","difficulty":5,"category":1}`
	rec := httptest.NewRecorder()
	h.Questions(rec, httptest.NewRequest(http.MethodPost, "/questions", strings.NewReader(payload)))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, float64(422), body["error"])
	assert.Equal(t, "unprocessable", body["message"])
	assert.Len(t, store.questions, 3)
}

func TestPostQuestionsSearch(t *testing.T) {
	h := newTestHandlers(t, newMemQuestionStore(
		Question{ID: 1, Question: "What is the boiling point?", Answer: "100C", Category: 1, Difficulty: 2},
		Question{ID: 2, Question: "Who painted this?", Answer: "someone", Category: 2, Difficulty: 3},
	))

	payload := `{"searchTerm":"BOILING"}`
	rec := httptest.NewRecorder()
	h.Questions(rec, httptest.NewRequest(http.MethodPost, "/questions", strings.NewReader(payload)))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(1), body["total_questions"])
	assert.Len(t, body["questions"], 1)
	assert.Nil(t, body["current_category"])
}

func TestPostQuestionsSearchNoMatchIs404(t *testing.T) {
	h := newTestHandlers(t, newMemQuestionStore(sampleQuestions(3)...))

	payload := `{"searchTerm":"definitely not present"}`
	rec := httptest.NewRecorder()
	h.Questions(rec, httptest.NewRequest(http.MethodPost, "/questions", strings.NewReader(payload)))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPostQuestionsBadJSONIs400(t *testing.T) {
	h := newTestHandlers(t, newMemQuestionStore())

	rec := httptest.NewRecorder()
	h.Questions(rec, httptest.NewRequest(http.MethodPost, "/questions", strings.NewReader("{not json")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "bad request", body["message"])
}

func TestDeleteQuestionByID(t *testing.T) {
	store := newMemQuestionStore(sampleQuestions(3)...)
	h := newTestHandlers(t, store)

	req := httptest.NewRequest(http.MethodDelete, "/questions/2", nil)
	req.SetPathValue("id", "2")
	rec := httptest.NewRecorder()
	h.QuestionByID(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(2), body["deleted"])
	assert.Equal(t, float64(2), body["total_questions"])
	_, exists := store.questions[2]
	assert.False(t, exists)
}

func TestDeleteMissingQuestionIs422(t *testing.T) {
	h := newTestHandlers(t, newMemQuestionStore(sampleQuestions(3)...))

	req := httptest.NewRequest(http.MethodDelete, "/questions/4000", nil)
	req.SetPathValue("id", "4000")
	rec := httptest.NewRecorder()
	h.QuestionByID(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "unprocessable", body["message"])
}

func TestPostQuestionByIDIs405(t *testing.T) {
	h := newTestHandlers(t, newMemQuestionStore(sampleQuestions(3)...))

	req := httptest.NewRequest(http.MethodPost, "/questions/45", nil)
	req.SetPathValue("id", "45")
	rec := httptest.NewRecorder()
	h.QuestionByID(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, float64(405), body["error"])
	assert.Equal(t, "method not allowed", body["message"])
}

func TestQuestionsByCategoryHandler(t *testing.T) {
	h := newTestHandlers(t, newMemQuestionStore(
		Question{ID: 1, Question: "q1", Answer: "a", Category: 1, Difficulty: 1},
		Question{ID: 2, Question: "q2", Answer: "a", Category: 2, Difficulty: 1},
	))

	req := httptest.NewRequest(http.MethodGet, "/categories/0/questions", nil)
	req.SetPathValue("id", "0")
	rec := httptest.NewRecorder()
	h.QuestionsByCategory(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(1), body["total_questions"])
	assert.Equal(t, float64(0), body["current_category"])
	assert.Len(t, body["categories"], 6)
}

func TestQuestionsByCategoryEmptyIs404(t *testing.T) {
	h := newTestHandlers(t, newMemQuestionStore())

	req := httptest.NewRequest(http.MethodGet, "/categories/3/questions", nil)
	req.SetPathValue("id", "3")
	rec := httptest.NewRecorder()
	h.QuestionsByCategory(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestQuestionsByCategoryMalformedIDIs422(t *testing.T) {
	h := newTestHandlers(t, newMemQuestionStore())

	req := httptest.NewRequest(http.MethodGet, "/categories/abc/questions", nil)
	req.SetPathValue("id", "abc")
	rec := httptest.NewRecorder()
	h.QuestionsByCategory(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestPlayQuizDrawsUnseen(t *testing.T) {
	h := newTestHandlers(t, newMemQuestionStore(sampleQuestions(3)...))

	payload := `{"previous_questions":[1,3],"quiz_category":{"id":0,"type":"click"}}`
	rec := httptest.NewRecorder()
	h.PlayQuiz(rec, httptest.NewRequest(http.MethodPost, "/quizzes", strings.NewReader(payload)))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	question, ok := body["question"].(map[string]any)
	require.True(t, ok, "question should be an object")
	assert.Equal(t, float64(2), question["id"])
}

func TestPlayQuizExhaustedReturnsNull(t *testing.T) {
	h := newTestHandlers(t, newMemQuestionStore(sampleQuestions(2)...))

	payload := `{"previous_questions":[1,2],"quiz_category":{"id":0,"type":"click"}}`
	rec := httptest.NewRecorder()
	h.PlayQuiz(rec, httptest.NewRequest(http.MethodPost, "/quizzes", strings.NewReader(payload)))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Nil(t, body["question"])
}

func TestPlayQuizFiltersByCategory(t *testing.T) {
	h := newTestHandlers(t, newMemQuestionStore(
		Question{ID: 1, Question: "q1", Answer: "a", Category: 1, Difficulty: 1},
		Question{ID: 2, Question: "q2", Answer: "a", Category: 2, Difficulty: 1},
	))

	payload := `{"previous_questions":[],"quiz_category":{"id":2,"type":"Art"}}`
	rec := httptest.NewRecorder()
	h.PlayQuiz(rec, httptest.NewRequest(http.MethodPost, "/quizzes", strings.NewReader(payload)))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	question, ok := body["question"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(2), question["category"])
}

func TestMethodNotAllowedOnCollections(t *testing.T) {
	h := newTestHandlers(t, newMemQuestionStore(sampleQuestions(1)...))

	cases := []struct {
		name    string
		handler http.HandlerFunc
		method  string
		target  string
	}{
		{"put categories", h.Categories, http.MethodPut, "/categories"},
		{"patch questions", h.Questions, http.MethodPatch, "/questions"},
		{"get quizzes", h.PlayQuiz, http.MethodGet, "/quizzes"},
		{"post index", h.Index, http.MethodPost, "/"},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		tc.handler(rec, httptest.NewRequest(tc.method, tc.target, nil))
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code, tc.name)
	}
}
