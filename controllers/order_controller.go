package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/VersaceXcodes/salama-lama-food-truck-sub001/lifecycle"
	"github.com/VersaceXcodes/salama-lama-food-truck-sub001/pkg/resp"
	"github.com/VersaceXcodes/salama-lama-food-truck-sub001/services"
	"github.com/VersaceXcodes/salama-lama-food-truck-sub001/utils"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Service: s}
}

// orderErr maps service and engine errors onto the response envelope:
// validation failures 400, stale-state conflicts 409, missing rows 404.
func orderErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		resp.NotFound(c, "order not found")
	case errors.Is(err, services.ErrConflict):
		resp.Conflict(c, err.Error())
	case errors.Is(err, lifecycle.ErrInvalidTransition),
		errors.Is(err, lifecycle.ErrTerminalStatus),
		errors.Is(err, lifecycle.ErrCancelWindow),
		errors.Is(err, lifecycle.ErrRefundNotAllowed),
		errors.Is(err, services.ErrRefundAmount):
		resp.BadRequest(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}

// POST /orders — checkout from cart
func (oc *OrderController) Checkout(c *gin.Context) {
	var req services.CheckoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := oc.Service.Checkout(utils.CurrentUserID(c), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyCart),
			errors.Is(err, services.ErrMissingTimeSlot),
			errors.Is(err, services.ErrMissingAddress),
			errors.Is(err, services.ErrPointsUnavailable),
			errors.Is(err, services.ErrDiscountNotFound),
			errors.Is(err, services.ErrDiscountInactive),
			errors.Is(err, services.ErrDiscountExpired),
			errors.Is(err, services.ErrDiscountExhausted),
			errors.Is(err, services.ErrDiscountMinOrder):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, out)
}

// GET /profile/orders
func (oc *OrderController) ListForMe(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	items, err := oc.Service.ListForUser(utils.CurrentUserID(c), limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /orders/:id — staff and admin see the full engine output; customers
// get their own orders with the staff-only fields stripped.
func (oc *OrderController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var detail *services.OrderDetail
	var err error
	if utils.IsCustomer(c) {
		detail, err = oc.Service.DetailForUser(utils.CurrentUserID(c), uint(id))
		if detail != nil {
			detail.NextTransition = nil
			detail.CanStaffCancel = false
			detail.CanRefund = false
		}
	} else {
		detail, err = oc.Service.Detail(uint(id))
	}
	if err != nil {
		orderErr(c, err)
		return
	}
	resp.OK(c, detail)
}

// POST /orders/:id/cancel — customers get the 5-minute window, staff and
// above cancel any non-terminal order.
func (oc *OrderController) Cancel(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		CancellationReason string `json:"cancellation_reason" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	uid := utils.CurrentUserID(c)
	customer := utils.IsCustomer(c)
	var err error
	if customer {
		err = oc.Service.CustomerCancel(uid, uint(id), req.CancellationReason)
	} else {
		err = oc.Service.StaffCancel(uid, uint(id), req.CancellationReason)
	}
	if err != nil {
		orderErr(c, err)
		return
	}

	detail, err := oc.Service.Detail(uint(id))
	if err != nil {
		orderErr(c, err)
		return
	}
	if customer {
		detail.NextTransition = nil
		detail.CanStaffCancel = false
		detail.CanRefund = false
	}
	resp.OK(c, detail)
}
