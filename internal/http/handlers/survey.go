package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	types "github.com/yungbote/apollo-backend/internal/domain"
	"github.com/yungbote/apollo-backend/internal/http/response"
	"github.com/yungbote/apollo-backend/internal/services"
)

type SurveyHandler struct {
	surveyService   services.SurveyService
	questionService services.QuestionService
	contextService  services.ContextService
}

func NewSurveyHandler(
	surveyService services.SurveyService,
	questionService services.QuestionService,
	contextService services.ContextService,
) *SurveyHandler {
	return &SurveyHandler{
		surveyService:   surveyService,
		questionService: questionService,
		contextService:  contextService,
	}
}

// GET /api/surveys
func (h *SurveyHandler) List(c *gin.Context) {
	surveys, err := h.surveyService.FindAllSurveys(requestDBC(c))
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"surveys": surveys})
}

// GET /api/surveys/:id
func (h *SurveyHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	survey, err := h.surveyService.FindByID(requestDBC(c), id)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"survey": survey})
}

// POST /api/surveys
// body (optional): { "surveyid": 12 }
func (h *SurveyHandler) Save(c *gin.Context) {
	var req struct {
		ID int64 `json:"surveyid"`
	}
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	survey, err := h.surveyService.Save(requestDBC(c), &types.Survey{ID: req.ID})
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	if req.ID == 0 {
		response.RespondCreated(c, gin.H{"survey": survey})
		return
	}
	response.RespondOK(c, gin.H{"survey": survey})
}

// DELETE /api/surveys/:id
func (h *SurveyHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.surveyService.Delete(requestDBC(c), id); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondNoContent(c)
}

// POST /api/surveys/request/:topicId
// body: [{ "body": "...", "isLeader": false, "type": "text" }]
func (h *SurveyHandler) SaveRequest(c *gin.Context) {
	topicID, ok := pathID(c, "topicId")
	if !ok {
		return
	}
	var questions []types.SurveyQuestion
	if err := c.ShouldBindJSON(&questions); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	survey, err := h.surveyService.SaveRequest(requestDBC(c), questions, topicID, actingUser(c))
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"survey": survey})
}

// GET /api/surveys/:id/questions
func (h *SurveyHandler) Questions(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	questions, err := h.questionService.FindAllBySurveyID(requestDBC(c), id)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"questions": questions})
}

// GET /api/surveys/:id/contexts
func (h *SurveyHandler) Contexts(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	contexts, err := h.contextService.FindAllBySurveyID(requestDBC(c), id)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"contexts": contexts})
}
