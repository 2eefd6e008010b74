package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/VersaceXcodes/salama-lama-food-truck-sub001/pkg/resp"
	"github.com/VersaceXcodes/salama-lama-food-truck-sub001/services"
	"github.com/VersaceXcodes/salama-lama-food-truck-sub001/utils"
)

type CartController struct {
	Service *services.CartService
}

func NewCartController(s *services.CartService) *CartController {
	return &CartController{Service: s}
}

func cartErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMenuItemNotFound),
		errors.Is(err, services.ErrCartItemNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrMenuItemUnavailable):
		resp.BadRequest(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}

// GET /cart
func (cc *CartController) Get(c *gin.Context) {
	view, err := cc.Service.Get(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, view)
}

// POST /cart/items
func (cc *CartController) AddItem(c *gin.Context) {
	var req struct {
		MenuItemID uint   `json:"menuItemId" binding:"required"`
		Qty        int    `json:"qty" binding:"required,min=1"`
		Note       string `json:"note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	view, err := cc.Service.AddItem(utils.CurrentUserID(c), req.MenuItemID, req.Qty, req.Note)
	if err != nil {
		cartErr(c, err)
		return
	}
	resp.OK(c, view)
}

// PATCH /cart/items/:id
func (cc *CartController) UpdateItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req struct {
		Qty  int     `json:"qty" binding:"required,min=0"`
		Note *string `json:"note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	view, err := cc.Service.UpdateItem(utils.CurrentUserID(c), uint(id), req.Qty, req.Note)
	if err != nil {
		cartErr(c, err)
		return
	}
	resp.OK(c, view)
}

// DELETE /cart/items/:id
func (cc *CartController) RemoveItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	view, err := cc.Service.RemoveItem(utils.CurrentUserID(c), uint(id))
	if err != nil {
		cartErr(c, err)
		return
	}
	resp.OK(c, view)
}
