package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/VersaceXcodes/salama-lama-food-truck-sub001/entity"
	"github.com/VersaceXcodes/salama-lama-food-truck-sub001/pkg/resp"
)

type MenuController struct{ DB *gorm.DB }

func NewMenuController(db *gorm.DB) *MenuController { return &MenuController{DB: db} }

// GET /menu — full menu grouped by category, customers only see available items
func (mc *MenuController) List(c *gin.Context) {
	var categories []entity.MenuCategory
	if err := mc.DB.Order("sort_order ASC, id ASC").Find(&categories).Error; err != nil {
		resp.ServerError(c, err)
		return
	}

	type categoryOut struct {
		entity.MenuCategory
		Items []entity.MenuItem `json:"items"`
	}
	out := make([]categoryOut, 0, len(categories))
	for _, cat := range categories {
		var items []entity.MenuItem
		q := mc.DB.Where("category_id = ?", cat.ID)
		if c.Query("all") == "" { // staff pass ?all=1 to include unavailable items
			q = q.Where("available = ?", true)
		}
		if err := q.Order("id ASC").Find(&items).Error; err != nil {
			resp.ServerError(c, err)
			return
		}
		out = append(out, categoryOut{MenuCategory: cat, Items: items})
	}
	resp.OK(c, gin.H{"categories": out})
}

// GET /menu/items/:id
func (mc *MenuController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var item entity.MenuItem
	if err := mc.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, item)
}

// ===== Manager/admin CRUD =====

type menuItemIn struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       int64  `json:"price" binding:"required,min=1"`
	ImageURL    string `json:"imageUrl"`
	CategoryID  uint   `json:"categoryId" binding:"required"`
	Vegetarian  bool   `json:"vegetarian"`
	Vegan       bool   `json:"vegan"`
	GlutenFree  bool   `json:"glutenFree"`
}

// POST /manage/menu/items
func (mc *MenuController) CreateItem(c *gin.Context) {
	var req menuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	var cat entity.MenuCategory
	if err := mc.DB.Select("id").First(&cat, req.CategoryID).Error; err != nil {
		resp.BadRequest(c, "category not found")
		return
	}

	item := entity.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		CategoryID:  req.CategoryID,
		Available:   true,
		Vegetarian:  req.Vegetarian,
		Vegan:       req.Vegan,
		GlutenFree:  req.GlutenFree,
	}
	if err := mc.DB.Create(&item).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, item)
}

// PATCH /manage/menu/items/:id
func (mc *MenuController) UpdateItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
		Price       *int64  `json:"price"`
		ImageURL    *string `json:"imageUrl"`
		Available   *bool   `json:"available"`
		CategoryID  *uint   `json:"categoryId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			resp.BadRequest(c, "price must be positive")
			return
		}
		updates["price"] = *req.Price
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.Available != nil {
		updates["available"] = *req.Available
	}
	if req.CategoryID != nil {
		updates["category_id"] = *req.CategoryID
	}
	if len(updates) == 0 {
		resp.BadRequest(c, "nothing to update")
		return
	}

	res := mc.DB.Model(&entity.MenuItem{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		resp.ServerError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		resp.NotFound(c, "menu item not found")
		return
	}

	var item entity.MenuItem
	mc.DB.First(&item, id)
	resp.OK(c, item)
}

// POST /manage/menu/categories
func (mc *MenuController) CreateCategory(c *gin.Context) {
	var req struct {
		Name      string `json:"name" binding:"required"`
		SortOrder int    `json:"sortOrder"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cat := entity.MenuCategory{Name: req.Name, SortOrder: req.SortOrder}
	if err := mc.DB.Create(&cat).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, cat)
}
