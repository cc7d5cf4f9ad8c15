package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	types "github.com/yungbote/apollo-backend/internal/domain"
	"github.com/yungbote/apollo-backend/internal/http/response"
	"github.com/yungbote/apollo-backend/internal/services"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// userRequest is the write shape of a user. Password never leaves the server,
// so it cannot be bound onto types.User directly.
type userRequest struct {
	ID       int64  `json:"userid"`
	Username string `json:"username"`
	Email    string `json:"primaryemail"`
	Password string `json:"password"`
	Roles    []struct {
		ID   int64  `json:"roleid"`
		Name string `json:"name"`
	} `json:"roles"`
}

func (r userRequest) toUser() *types.User {
	u := &types.User{ID: r.ID, Username: r.Username, Email: r.Email, Password: r.Password}
	for _, ref := range r.Roles {
		u.Roles = append(u.Roles, types.UserRoles{RoleID: ref.ID, Role: &types.Role{ID: ref.ID, Name: ref.Name}})
	}
	return u
}

// GET /api/users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.FindAll(requestDBC(c))
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"users": users})
}

// GET /api/users/:id
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	user, err := h.userService.FindByID(requestDBC(c), id)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"user": user})
}

// POST /api/users
// body: { "userid": 0, "username": "...", "primaryemail": "...", "password": "...", "roles": [{"name": "user"}] }
func (h *UserHandler) Save(c *gin.Context) {
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	user, err := h.userService.Save(requestDBC(c), req.toUser())
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	if req.ID == 0 {
		response.RespondCreated(c, gin.H{"user": user})
		return
	}
	response.RespondOK(c, gin.H{"user": user})
}

// DELETE /api/users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.userService.Delete(requestDBC(c), id); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondNoContent(c)
}

// POST /api/users/:id/roles/:roleId
func (h *UserHandler) AddRole(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}
	roleID, ok := pathID(c, "roleId")
	if !ok {
		return
	}
	user, err := h.userService.AddRole(requestDBC(c), userID, roleID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"user": user})
}

// DELETE /api/users/:id/roles/:roleId
func (h *UserHandler) RemoveRole(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}
	roleID, ok := pathID(c, "roleId")
	if !ok {
		return
	}
	user, err := h.userService.RemoveRole(requestDBC(c), userID, roleID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"user": user})
}
