package controllers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/VersaceXcodes/salama-lama-food-truck-sub001/lifecycle"
	"github.com/VersaceXcodes/salama-lama-food-truck-sub001/pkg/resp"
	"github.com/VersaceXcodes/salama-lama-food-truck-sub001/services"
	"github.com/VersaceXcodes/salama-lama-food-truck-sub001/utils"
)

type AdminController struct {
	Orders    *services.OrderService
	Analytics *services.AnalyticsService
}

func NewAdminController(orders *services.OrderService, analytics *services.AnalyticsService) *AdminController {
	return &AdminController{Orders: orders, Analytics: analytics}
}

// GET /admin/dashboard
func (ac *AdminController) Dashboard(c *gin.Context) {
	dash, err := ac.Analytics.Dashboard(time.Now())
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, dash)
}

// GET /admin/orders?status=&page=&limit=
func (ac *AdminController) ListOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	var status *lifecycle.Status
	if s := lifecycle.Status(c.Query("status")); s != "" {
		if !s.Valid() {
			resp.BadRequest(c, "unknown status")
			return
		}
		status = &s
	}

	orders, total, err := ac.Orders.List(status, page, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders, "total": total, "page": page, "limit": limit})
}

// POST /orders/:id/refund — manager/admin, gated by refund eligibility
func (ac *AdminController) Refund(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		RefundAmount int64  `json:"refund_amount" binding:"required,min=1"`
		RefundReason string `json:"refund_reason" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ac.Orders.Refund(utils.CurrentUserID(c), uint(id), req.RefundAmount, req.RefundReason); err != nil {
		orderErr(c, err)
		return
	}

	detail, err := ac.Orders.Detail(uint(id))
	if err != nil {
		orderErr(c, err)
		return
	}
	resp.OK(c, detail)
}
