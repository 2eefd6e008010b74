package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/VersaceXcodes/salama-lama-food-truck-sub001/pkg/resp"
	"github.com/VersaceXcodes/salama-lama-food-truck-sub001/services"
	"github.com/VersaceXcodes/salama-lama-food-truck-sub001/utils"
)

type LoyaltyController struct {
	Service *services.LoyaltyService
}

func NewLoyaltyController(s *services.LoyaltyService) *LoyaltyController {
	return &LoyaltyController{Service: s}
}

// GET /profile/loyalty
func (lc *LoyaltyController) Summary(c *gin.Context) {
	view, err := lc.Service.Summary(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, view)
}
