package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	types "github.com/yungbote/apollo-backend/internal/domain"
	"github.com/yungbote/apollo-backend/internal/http/response"
	"github.com/yungbote/apollo-backend/internal/services"
)

type ContextHandler struct {
	contextService services.ContextService
}

func NewContextHandler(contextService services.ContextService) *ContextHandler {
	return &ContextHandler{contextService: contextService}
}

// GET /api/contexts
func (h *ContextHandler) List(c *gin.Context) {
	contexts, err := h.contextService.FindAll(requestDBC(c))
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"contexts": contexts})
}

// GET /api/contexts/:id
func (h *ContextHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	ctxRow, err := h.contextService.FindByID(requestDBC(c), id)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"context": ctxRow})
}

// POST /api/contexts
// body: { "contextid": 0, "name": "...", "surveyid": 3 }
func (h *ContextHandler) Save(c *gin.Context) {
	var req struct {
		ID   int64  `json:"contextid"`
		Name string `json:"name"`
		surveyRef
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	in := types.NewContext(req.Name, &types.Survey{ID: req.surveyID()})
	in.ID = req.ID
	saved, err := h.contextService.Save(requestDBC(c), in)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	if req.ID == 0 {
		response.RespondCreated(c, gin.H{"context": saved})
		return
	}
	response.RespondOK(c, gin.H{"context": saved})
}

// DELETE /api/contexts/:id
func (h *ContextHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.contextService.Delete(requestDBC(c), id); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondNoContent(c)
}
