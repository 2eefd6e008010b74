package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/VersaceXcodes/salama-lama-food-truck-sub001/lifecycle"
	"github.com/VersaceXcodes/salama-lama-food-truck-sub001/pkg/resp"
	"github.com/VersaceXcodes/salama-lama-food-truck-sub001/repository"
	"github.com/VersaceXcodes/salama-lama-food-truck-sub001/services"
	"github.com/VersaceXcodes/salama-lama-food-truck-sub001/utils"
)

type StaffOrderController struct {
	Service *services.OrderService
}

func NewStaffOrderController(s *services.OrderService) *StaffOrderController {
	return &StaffOrderController{Service: s}
}

// GET /staff/queue — non-terminal orders oldest first, each with its single
// legal next action so the UI renders one button per card.
func (sc *StaffOrderController) Queue(c *gin.Context) {
	entries, err := sc.Service.Queue()
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	type queueCard struct {
		repository.QueueEntry
		NextTransition *lifecycle.Transition `json:"nextTransition"`
	}
	out := make([]queueCard, 0, len(entries))
	for _, e := range entries {
		out = append(out, queueCard{
			QueueEntry:     e,
			NextTransition: lifecycle.NextTransition(e.Status, e.OrderType),
		})
	}
	resp.OK(c, gin.H{"items": out})
}

// PUT /orders/:id/status — the advance endpoint. The body's status must be
// the single legal next status; anything else is rejected before the write.
func (sc *StaffOrderController) UpdateStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		Status lifecycle.Status `json:"status" binding:"required"`
		Notes  string           `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if !req.Status.Valid() {
		resp.BadRequest(c, "unknown status")
		return
	}

	if err := sc.Service.Advance(utils.CurrentUserID(c), uint(id), req.Status, req.Notes); err != nil {
		orderErr(c, err)
		return
	}

	detail, err := sc.Service.Detail(uint(id))
	if err != nil {
		orderErr(c, err)
		return
	}
	resp.OK(c, detail)
}
