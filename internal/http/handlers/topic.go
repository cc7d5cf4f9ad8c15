package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	types "github.com/yungbote/apollo-backend/internal/domain"
	"github.com/yungbote/apollo-backend/internal/http/response"
	"github.com/yungbote/apollo-backend/internal/platform/dbctx"
	"github.com/yungbote/apollo-backend/internal/services"
)

type TopicHandler struct {
	topicService services.TopicService
}

func NewTopicHandler(topicService services.TopicService) *TopicHandler {
	return &TopicHandler{topicService: topicService}
}

type topicRequest struct {
	Title   string  `json:"title"`
	UserIDs []int64 `json:"users"`
	surveyRef
}

// GET /api/topics
// ?owner=me narrows to the caller's own topics.
func (h *TopicHandler) List(c *gin.Context) {
	var (
		topics []*types.Topic
		err    error
	)
	if c.Query("owner") == "me" {
		me := actingUser(c)
		if me == nil {
			response.RespondError(c, http.StatusUnauthorized, "unauthorized", errors.New("missing caller"))
			return
		}
		topics, err = h.topicService.FindAllByOwnerID(requestDBC(c), me.ID)
	} else {
		topics, err = h.topicService.FindAll(requestDBC(c))
	}
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"topics": topics})
}

// GET /api/topics/:id
func (h *TopicHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	topic, err := h.topicService.FindByID(requestDBC(c), id)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"topic": topic})
}

// POST /api/topics
// The caller becomes the owner.
func (h *TopicHandler) Create(c *gin.Context) {
	var req topicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	me := actingUser(c)
	if me == nil {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", errors.New("missing caller"))
		return
	}
	in := types.NewTopic(req.Title, me, &types.Survey{ID: req.surveyID()})
	for _, uid := range req.UserIDs {
		in.AddUser(&types.User{ID: uid})
	}
	topic, err := h.topicService.Save(requestDBC(c), in, me)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"topic": topic})
}

// PUT /api/topics/:id
// Only the owner may update. Title and survey change; owner and members are kept.
func (h *TopicHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req topicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	in := types.NewTopic(req.Title, nil, &types.Survey{ID: req.surveyID()})
	in.ID = id
	topic, err := h.topicService.Save(requestDBC(c), in, actingUser(c))
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"topic": topic})
}

// DELETE /api/topics/:id
func (h *TopicHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.topicService.Delete(requestDBC(c), id, actingUser(c)); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondNoContent(c)
}

// POST /api/topics/:id/users/:userId
func (h *TopicHandler) AddUser(c *gin.Context) {
	h.membership(c, h.topicService.AddUser)
}

// DELETE /api/topics/:id/users/:userId
func (h *TopicHandler) RemoveUser(c *gin.Context) {
	h.membership(c, h.topicService.RemoveUser)
}

type membershipFn func(dbc dbctx.Context, topicID, userID int64, actingUser *types.User) (*types.Topic, error)

func (h *TopicHandler) membership(c *gin.Context, fn membershipFn) {
	topicID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	topic, err := fn(requestDBC(c), topicID, userID, actingUser(c))
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"topic": topic})
}
