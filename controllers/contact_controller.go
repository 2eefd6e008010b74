package controllers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/VersaceXcodes/salama-lama-food-truck-sub001/entity"
	"github.com/VersaceXcodes/salama-lama-food-truck-sub001/pkg/resp"
)

type ContactController struct{ DB *gorm.DB }

func NewContactController(db *gorm.DB) *ContactController { return &ContactController{DB: db} }

// POST /contact — public form
func (cc *ContactController) Submit(c *gin.Context) {
	var req struct {
		Name    string `json:"name" binding:"required"`
		Email   string `json:"email" binding:"required,email"`
		Subject string `json:"subject"`
		Body    string `json:"body" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	msg := entity.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Body:    req.Body,
	}
	if err := cc.DB.Create(&msg).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"id": msg.ID})
}

// GET /admin/contact?unread=1
func (cc *ContactController) List(c *gin.Context) {
	q := cc.DB.Model(&entity.ContactMessage{})
	if c.Query("unread") != "" {
		q = q.Where("read_at IS NULL")
	}

	var items []entity.ContactMessage
	if err := q.Order("id DESC").Find(&items).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// PATCH /admin/contact/:id/read
func (cc *ContactController) MarkRead(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	now := time.Now()
	res := cc.DB.Model(&entity.ContactMessage{}).
		Where("id = ? AND read_at IS NULL", id).
		Update("read_at", now)
	if res.Error != nil {
		resp.ServerError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		resp.NotFound(c, "message not found or already read")
		return
	}
	resp.OK(c, gin.H{"id": id, "readAt": now})
}
