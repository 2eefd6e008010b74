package controllers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/VersaceXcodes/salama-lama-food-truck-sub001/entity"
	"github.com/VersaceXcodes/salama-lama-food-truck-sub001/pkg/resp"
	"github.com/VersaceXcodes/salama-lama-food-truck-sub001/utils"
)

type PaymentMethodController struct{ DB *gorm.DB }

func NewPaymentMethodController(db *gorm.DB) *PaymentMethodController {
	return &PaymentMethodController{DB: db}
}

// GET /payment-methods
func (pc *PaymentMethodController) List(c *gin.Context) {
	var items []entity.PaymentMethod
	if err := pc.DB.Where("user_id = ?", utils.CurrentUserID(c)).
		Order("is_default DESC, id DESC").
		Find(&items).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// POST /payment-methods — stores the provider token and display fields only
func (pc *PaymentMethodController) Create(c *gin.Context) {
	var req struct {
		Brand     string `json:"brand" binding:"required"`
		Last4     string `json:"last4" binding:"required,len=4"`
		ExpMonth  int    `json:"expMonth" binding:"required,min=1,max=12"`
		ExpYear   int    `json:"expYear" binding:"required"`
		IsDefault bool   `json:"isDefault"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.ExpYear < time.Now().Year() {
		resp.BadRequest(c, "card has expired")
		return
	}

	uid := utils.CurrentUserID(c)
	pm := entity.PaymentMethod{
		UserID:      uid,
		Brand:       req.Brand,
		Last4:       req.Last4,
		ExpMonth:    req.ExpMonth,
		ExpYear:     req.ExpYear,
		IsDefault:   req.IsDefault,
		ProviderRef: uuid.NewString(),
	}

	err := pc.DB.Transaction(func(tx *gorm.DB) error {
		if pm.IsDefault {
			if err := tx.Model(&entity.PaymentMethod{}).
				Where("user_id = ?", uid).
				Update("is_default", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(&pm).Error
	})
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, pm)
}

// PATCH /payment-methods/:id/default
func (pc *PaymentMethodController) SetDefault(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	uid := utils.CurrentUserID(c)

	err := pc.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entity.PaymentMethod{}).
			Where("id = ? AND user_id = ?", id, uid).
			Update("is_default", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Model(&entity.PaymentMethod{}).
			Where("user_id = ? AND id <> ?", uid, id).
			Update("is_default", false).Error
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			resp.NotFound(c, "payment method not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id, "isDefault": true})
}

// DELETE /payment-methods/:id
func (pc *PaymentMethodController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	res := pc.DB.Where("id = ? AND user_id = ?", id, utils.CurrentUserID(c)).
		Delete(&entity.PaymentMethod{})
	if res.Error != nil {
		resp.ServerError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		resp.NotFound(c, "payment method not found")
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
