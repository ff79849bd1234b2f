package handlers

import (
	"net/http"

	portssvc "github.com/FurkanErogluu/shopping-cart/internal/core/ports/services"
	"github.com/FurkanErogluu/shopping-cart/internal/dto"
	"github.com/FurkanErogluu/shopping-cart/internal/middleware"
	"github.com/gin-gonic/gin"
)

// shoppingListHandler handles shopping list CRUD, item and membership routes.
type shoppingListHandler struct {
	shoppingListService portssvc.ShoppingListSvcFacade
}

func newShoppingListHandler(sls portssvc.ShoppingListSvcFacade) *shoppingListHandler {
	return &shoppingListHandler{shoppingListService: sls}
}

// registerShoppingListRoutes registers all shopping-list-related routes.
func registerShoppingListRoutes(rg *gin.RouterGroup, shoppingListService portssvc.ShoppingListSvcFacade) {
	h := newShoppingListHandler(shoppingListService)

	lists := rg.Group("/shopping-lists")
	{
		lists.POST("", h.createList)
		lists.GET("", h.listLists)
		lists.GET("/:listID", h.getList)
		lists.PUT("/:listID", h.updateList)
		lists.DELETE("/:listID", h.deleteList)

		lists.POST("/:listID/items", h.addItem)
		lists.DELETE("/:listID/items/:productID", h.removeItem)
		lists.PUT("/:listID/items/:productID/quantity", h.updateItemQuantity)
		lists.PUT("/:listID/items/:productID/checked", h.updateItemChecked)

		lists.POST("/:listID/members", h.addMember)
		lists.DELETE("/:listID/members/me", h.leave)
	}
}

func (h *shoppingListHandler) createList(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var req dto.CreateShoppingListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	resp, err := h.shoppingListService.CreateShoppingList(c.Request.Context(), req.Name, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, resp)
}

func (h *shoppingListHandler) listLists(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	responses, err := h.shoppingListService.ListShoppingListsForUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, responses)
}

func (h *shoppingListHandler) getList(c *gin.Context) {
	resp, err := h.shoppingListService.GetShoppingListByID(c.Request.Context(), c.Param("listID"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, resp)
}

func (h *shoppingListHandler) updateList(c *gin.Context) {
	var req dto.UpdateShoppingListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	if err := h.shoppingListService.UpdateShoppingList(c.Request.Context(), c.Param("listID"), req.Name, req.IsCompleted); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"message": "Shopping list updated"})
}

func (h *shoppingListHandler) deleteList(c *gin.Context) {
	if err := h.shoppingListService.DeleteShoppingList(c.Request.Context(), c.Param("listID")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"message": "Shopping list deleted"})
}

func (h *shoppingListHandler) addItem(c *gin.Context) {
	var req dto.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}
	if !req.Quantity.IsPositive() {
		respondQuantityError(c)
		return
	}

	if err := h.shoppingListService.AddItem(c.Request.Context(), c.Param("listID"), req.ProductID, req.Quantity); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, gin.H{"message": "Item added"})
}

func (h *shoppingListHandler) removeItem(c *gin.Context) {
	if err := h.shoppingListService.RemoveItem(c.Request.Context(), c.Param("listID"), c.Param("productID")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"message": "Item removed"})
}

func (h *shoppingListHandler) updateItemQuantity(c *gin.Context) {
	var req dto.UpdateItemQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	if !req.Quantity.IsPositive() {
		respondQuantityError(c)
		return
	}

	if err := h.shoppingListService.UpdateItemQuantity(c.Request.Context(), c.Param("listID"), c.Param("productID"), req.Quantity); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"message": "Item quantity updated"})
}

func (h *shoppingListHandler) updateItemChecked(c *gin.Context) {
	var req dto.UpdateItemCheckedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	if err := h.shoppingListService.UpdateItemChecked(c.Request.Context(), c.Param("listID"), c.Param("productID"), *req.IsChecked); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"message": "Item updated"})
}

func (h *shoppingListHandler) addMember(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var req dto.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	if err := h.shoppingListService.AddMember(c.Request.Context(), c.Param("listID"), req.UserID, userID); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, gin.H{"message": "Member added"})
}

func (h *shoppingListHandler) leave(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	if err := h.shoppingListService.Leave(c.Request.Context(), c.Param("listID"), userID); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"message": "Left shopping list"})
}
