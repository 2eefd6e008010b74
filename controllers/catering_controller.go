package controllers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/VersaceXcodes/salama-lama-food-truck-sub001/entity"
	"github.com/VersaceXcodes/salama-lama-food-truck-sub001/pkg/resp"
)

type CateringController struct{ DB *gorm.DB }

func NewCateringController(db *gorm.DB) *CateringController { return &CateringController{DB: db} }

// Pipeline transitions; closed is reachable from any non-final state.
var cateringNext = map[string][]string{
	entity.CateringNew:       {entity.CateringContacted, entity.CateringClosed},
	entity.CateringContacted: {entity.CateringQuoted, entity.CateringClosed},
	entity.CateringQuoted:    {entity.CateringConfirmed, entity.CateringClosed},
	entity.CateringConfirmed: {},
	entity.CateringClosed:    {},
}

func cateringCanMove(from, to string) bool {
	for _, s := range cateringNext[from] {
		if s == to {
			return true
		}
	}
	return false
}

// POST /catering — public inquiry form
func (cc *CateringController) Submit(c *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required"`
		Email       string `json:"email" binding:"required,email"`
		PhoneNumber string `json:"phoneNumber"`
		EventDate   string `json:"eventDate"` // RFC3339, optional
		GuestCount  int    `json:"guestCount"`
		Message     string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	inquiry := entity.CateringInquiry{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		GuestCount:  req.GuestCount,
		Message:     req.Message,
		Status:      entity.CateringNew,
	}
	if req.EventDate != "" {
		t, err := time.Parse(time.RFC3339, req.EventDate)
		if err != nil {
			resp.BadRequest(c, "eventDate must be RFC3339")
			return
		}
		inquiry.EventDate = &t
	}

	if err := cc.DB.Create(&inquiry).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"id": inquiry.ID, "status": inquiry.Status})
}

// GET /staff/catering?status=
func (cc *CateringController) List(c *gin.Context) {
	q := cc.DB.Model(&entity.CateringInquiry{})
	if s := c.Query("status"); s != "" {
		q = q.Where("status = ?", s)
	}

	var items []entity.CateringInquiry
	if err := q.Order("id DESC").Find(&items).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /staff/catering/:id
func (cc *CateringController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var inquiry entity.CateringInquiry
	if err := cc.DB.First(&inquiry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "inquiry not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, inquiry)
}

// PATCH /staff/catering/:id — move the inquiry along the pipeline
func (cc *CateringController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		Status     string  `json:"status"`
		StaffNotes *string `json:"staffNotes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	var inquiry entity.CateringInquiry
	if err := cc.DB.First(&inquiry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "inquiry not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	updates := map[string]any{}
	if req.Status != "" && req.Status != inquiry.Status {
		if !cateringCanMove(inquiry.Status, req.Status) {
			resp.BadRequest(c, "invalid inquiry status transition")
			return
		}
		updates["status"] = req.Status
	}
	if req.StaffNotes != nil {
		updates["staff_notes"] = *req.StaffNotes
	}
	if len(updates) == 0 {
		resp.BadRequest(c, "nothing to update")
		return
	}

	// guard against a concurrent move, same as the order status CAS
	res := cc.DB.Model(&entity.CateringInquiry{}).
		Where("id = ? AND status = ?", id, inquiry.Status).
		Updates(updates)
	if res.Error != nil {
		resp.ServerError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		resp.Conflict(c, "inquiry changed since it was loaded, refresh and retry")
		return
	}

	cc.DB.First(&inquiry, id)
	resp.OK(c, inquiry)
}
