package handlers

import (
	"net/http"

	portssvc "github.com/FurkanErogluu/shopping-cart/internal/core/ports/services"
	"github.com/FurkanErogluu/shopping-cart/internal/dto"
	"github.com/FurkanErogluu/shopping-cart/internal/middleware"
	"github.com/gin-gonic/gin"
)

// connectionHandler handles the symmetric user-to-user links.
type connectionHandler struct {
	connectionService portssvc.ConnectionSvcFacade
}

func newConnectionHandler(cs portssvc.ConnectionSvcFacade) *connectionHandler {
	return &connectionHandler{connectionService: cs}
}

// registerConnectionRoutes registers all connection-related routes.
func registerConnectionRoutes(rg *gin.RouterGroup, connectionService portssvc.ConnectionSvcFacade) {
	h := newConnectionHandler(connectionService)

	connections := rg.Group("/connections")
	{
		connections.GET("/my-follow-id", h.getMyFollowID)
		connections.POST("/connect", h.connect)
		connections.GET("", h.listConnections)
		connections.DELETE("/:id", h.disconnect)
	}
}

func (h *connectionHandler) getMyFollowID(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	followID, err := h.connectionService.GetFollowID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, dto.FollowIDResponse{FollowID: followID})
}

func (h *connectionHandler) connect(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var req dto.ConnectUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	resp, err := h.connectionService.Connect(c.Request.Context(), userID, req.FollowID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, resp)
}

func (h *connectionHandler) listConnections(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	responses, err := h.connectionService.ListConnections(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, responses)
}

func (h *connectionHandler) disconnect(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	if err := h.connectionService.Disconnect(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"message": "Connection removed"})
}
