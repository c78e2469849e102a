package trivia

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/triviahub/trivia-api/pkg/http/respond"
)

// HTTPHandlers exposes the question bank as REST endpoints.
type HTTPHandlers struct {
	svc    *Service
	logger zerolog.Logger
}

// NewHTTPHandlers creates the API handler set.
func NewHTTPHandlers(svc *Service, logger zerolog.Logger) *HTTPHandlers {
	return &HTTPHandlers{
		svc:    svc,
		logger: logger.With().Str("component", "trivia_http").Logger(),
	}
}

type categoriesResponse struct {
	Success         bool       `json:"success"`
	Categories      []Category `json:"categories"`
	TotalCategories int        `json:"total_categories"`
}

type questionsResponse struct {
	Success         bool       `json:"success"`
	Questions       []Question `json:"questions"`
	TotalQuestions  int        `json:"total_questions"`
	Categories      []string   `json:"categories,omitempty"`
	CurrentCategory *int       `json:"current_category"`
	Created         int        `json:"created,omitempty"`
}

type deleteResponse struct {
	Success        bool       `json:"success"`
	Deleted        int        `json:"deleted"`
	Questions      []Question `json:"questions"`
	Categories     []string   `json:"categories"`
	TotalQuestions int        `json:"total_questions"`
}

type categoryQuestionsResponse struct {
	Success         bool       `json:"success"`
	Questions       []Question `json:"questions"`
	TotalQuestions  int        `json:"total_questions"`
	CurrentCategory int        `json:"current_category"`
	Categories      []Category `json:"categories"`
}

type quizResponse struct {
	Success  bool      `json:"success"`
	Question *Question `json:"question"`
}

// questionsPostRequest is the POST /questions body. A non-empty searchTerm
// selects the search operation; otherwise the remaining fields describe a
// question to create. Pointers distinguish absent fields from zero values.
type questionsPostRequest struct {
	SearchTerm *string `json:"searchTerm"`
	Question   *string `json:"question"`
	Answer     *string `json:"answer"`
	Difficulty *int    `json:"difficulty"`
	Category   *int    `json:"category"`
}

type quizRequest struct {
	PreviousQuestions []int         `json:"previous_questions"`
	QuizCategory      *quizCategory `json:"quiz_category"`
}

type quizCategory struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

// Index handles GET / and doubles as the JSON 404 for unrouted paths.
func (h *HTTPHandlers) Index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		respond.NotFound(w)
		return
	}
	if r.Method != http.MethodGet {
		respond.MethodNotAllowed(w)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Welcome to the trivia API",
	})
}

// Categories handles GET /categories.
func (h *HTTPHandlers) Categories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respond.MethodNotAllowed(w)
		return
	}
	list, err := h.svc.ListCategories(r.Context())
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, categoriesResponse{
		Success:         true,
		Categories:      list.Categories,
		TotalCategories: list.Total,
	})
}

// Questions handles GET /questions (paginated listing) and POST /questions
// (add, or search when the body carries a searchTerm).
func (h *HTTPHandlers) Questions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listQuestions(w, r)
	case http.MethodPost:
		h.addOrSearchQuestions(w, r)
	default:
		respond.MethodNotAllowed(w)
	}
}

func (h *HTTPHandlers) listQuestions(w http.ResponseWriter, r *http.Request) {
	page := pageParam(r)
	result, err := h.svc.ListQuestions(r.Context(), page)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, questionsResponse{
		Success:        true,
		Questions:      result.Questions,
		TotalQuestions: result.Total,
		Categories:     result.Labels,
	})
}

func (h *HTTPHandlers) addOrSearchQuestions(w http.ResponseWriter, r *http.Request) {
	var req questionsPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w)
		return
	}

	if req.SearchTerm != nil && *req.SearchTerm != "" {
		page := pageParam(r)
		result, err := h.svc.SearchQuestions(r.Context(), *req.SearchTerm, page)
		if err != nil {
			h.respondServiceError(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, questionsResponse{
			Success:        true,
			Questions:      result.Questions,
			TotalQuestions: result.Total,
		})
		return
	}

	nq := NewQuestion{}
	if req.Question != nil {
		nq.Question = *req.Question
	}
	if req.Answer != nil {
		nq.Answer = *req.Answer
	}
	if req.Difficulty != nil {
		nq.Difficulty = *req.Difficulty
	}
	if req.Category != nil {
		nq.Category = *req.Category
	}
	result, err := h.svc.AddQuestion(r.Context(), nq)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, questionsResponse{
		Success:        true,
		Created:        result.Created,
		Questions:      result.Page.Questions,
		TotalQuestions: result.Page.Total,
		Categories:     result.Page.Labels,
	})
}

// QuestionByID handles DELETE /questions/{id}. Absent or malformed ids are
// unprocessable rather than not-found; that asymmetry is part of the API
// contract.
func (h *HTTPHandlers) QuestionByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		respond.MethodNotAllowed(w)
		return
	}
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		respond.Unprocessable(w)
		return
	}
	result, err := h.svc.DeleteQuestion(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrUnprocessable) || errors.Is(err, ErrNotFound) {
			respond.Unprocessable(w)
			return
		}
		h.logger.Error().Err(err).Int("question_id", id).Msg("delete question failed")
		respond.Unprocessable(w)
		return
	}
	respond.JSON(w, http.StatusOK, deleteResponse{
		Success:        true,
		Deleted:        result.Deleted,
		Questions:      result.Page.Questions,
		Categories:     result.Page.Labels,
		TotalQuestions: result.Page.Total,
	})
}

// QuestionsByCategory handles GET /categories/{id}/questions. Path ids are
// 0-based; ExternalToStoredCategoryID bridges to the stored convention.
func (h *HTTPHandlers) QuestionsByCategory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respond.MethodNotAllowed(w)
		return
	}
	externalID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		respond.Unprocessable(w)
		return
	}
	page := pageParam(r)
	result, err := h.svc.QuestionsByCategory(r.Context(), externalID, page)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.NotFound(w)
			return
		}
		h.logger.Error().Err(err).Int("category", externalID).Msg("category listing failed")
		respond.Unprocessable(w)
		return
	}
	respond.JSON(w, http.StatusOK, categoryQuestionsResponse{
		Success:         true,
		Questions:       result.Questions,
		TotalQuestions:  result.Total,
		CurrentCategory: result.CurrentCategory,
		Categories:      result.Categories,
	})
}

// PlayQuiz handles POST /quizzes. The caller supplies the ids already asked;
// a null question in the response signals the pool is exhausted.
func (h *HTTPHandlers) PlayQuiz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respond.MethodNotAllowed(w)
		return
	}
	var req quizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w)
		return
	}
	categoryID := AnyCategory
	if req.QuizCategory != nil {
		categoryID = req.QuizCategory.ID
	}
	question, err := h.svc.NextQuizQuestion(r.Context(), req.PreviousQuestions, categoryID)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, quizResponse{Success: true, Question: question})
}

func (h *HTTPHandlers) respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.NotFound(w)
	case errors.Is(err, ErrUnprocessable):
		respond.Unprocessable(w)
	default:
		h.logger.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		respond.Error(w, http.StatusInternalServerError, "internal server error")
	}
}

// pageParam reads the 1-based page query parameter, falling back to the
// first page on absent or non-numeric values.
func pageParam(r *http.Request) int {
	raw := r.URL.Query().Get("page")
	if raw == "" {
		return 1
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}
