package controllers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/VersaceXcodes/salama-lama-food-truck-sub001/pkg/resp"
	"github.com/VersaceXcodes/salama-lama-food-truck-sub001/services"
)

type DiscountController struct {
	Service *services.DiscountService
}

func NewDiscountController(s *services.DiscountService) *DiscountController {
	return &DiscountController{Service: s}
}

// POST /discounts/validate — used by the checkout form for early feedback;
// the real enforcement happens again inside the checkout transaction.
func (dc *DiscountController) Validate(c *gin.Context) {
	var req struct {
		Code     string `json:"code" binding:"required"`
		Subtotal int64  `json:"subtotal" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	d, amount, err := dc.Service.Evaluate(req.Code, req.Subtotal, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDiscountNotFound):
			resp.NotFound(c, err.Error())
		case errors.Is(err, services.ErrDiscountInactive),
			errors.Is(err, services.ErrDiscountExpired),
			errors.Is(err, services.ErrDiscountExhausted),
			errors.Is(err, services.ErrDiscountMinOrder):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"code": d.Code, "discountAmount": amount})
}

// ===== Admin CRUD =====

// GET /admin/discounts
func (dc *DiscountController) List(c *gin.Context) {
	items, err := dc.Service.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// POST /admin/discounts
func (dc *DiscountController) Create(c *gin.Context) {
	var req services.DiscountIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	d, err := dc.Service.Create(&req)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, d)
}

// PATCH /admin/discounts/:id
func (dc *DiscountController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		Description *string `json:"description"`
		MinOrder    *int64  `json:"minOrder"`
		MaxUses     *int    `json:"maxUses"`
		Active      *bool   `json:"active"`
		EndAt       *string `json:"endAt"` // RFC3339, empty string clears it
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.MinOrder != nil {
		updates["min_order"] = *req.MinOrder
	}
	if req.MaxUses != nil {
		updates["max_uses"] = *req.MaxUses
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}
	if req.EndAt != nil {
		if *req.EndAt == "" {
			updates["end_at"] = nil
		} else {
			t, err := time.Parse(time.RFC3339, *req.EndAt)
			if err != nil {
				resp.BadRequest(c, "endAt must be RFC3339")
				return
			}
			updates["end_at"] = t
		}
	}
	if len(updates) == 0 {
		resp.BadRequest(c, "nothing to update")
		return
	}

	d, err := dc.Service.Update(uint(id), updates)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, d)
}

// DELETE /admin/discounts/:id
func (dc *DiscountController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := dc.Service.Delete(uint(id)); err != nil {
		if errors.Is(err, services.ErrDiscountNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
