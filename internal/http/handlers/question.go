package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	types "github.com/yungbote/apollo-backend/internal/domain"
	"github.com/yungbote/apollo-backend/internal/http/response"
	"github.com/yungbote/apollo-backend/internal/services"
)

type QuestionHandler struct {
	questionService services.QuestionService
}

func NewQuestionHandler(questionService services.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

type questionRequest struct {
	Body     string `json:"body"`
	IsLeader bool   `json:"leader"`
	Type     string `json:"type"`
	surveyRef
}

func (r questionRequest) toQuestion(id int64) *types.Question {
	q := types.NewQuestion(r.Body, r.IsLeader, r.Type, &types.Survey{ID: r.surveyID()})
	q.ID = id
	return q
}

// GET /api/questions
func (h *QuestionHandler) List(c *gin.Context) {
	questions, err := h.questionService.FindAllQuestions(requestDBC(c))
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"questions": questions})
}

// GET /api/questions/:id
func (h *QuestionHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	question, err := h.questionService.FindByID(requestDBC(c), id)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"question": question})
}

// POST /api/questions
// Any id in the body is ignored; this always inserts.
func (h *QuestionHandler) Create(c *gin.Context) {
	var req questionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	question, err := h.questionService.Save(requestDBC(c), req.toQuestion(0))
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"question": question})
}

// PUT /api/questions/:id
func (h *QuestionHandler) Replace(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req questionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	question, err := h.questionService.Save(requestDBC(c), req.toQuestion(id))
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"question": question})
}

// DELETE /api/questions/:id
func (h *QuestionHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.questionService.Delete(requestDBC(c), id, actingUser(c)); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondNoContent(c)
}
