package configs

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/VersaceXcodes/salama-lama-food-truck-sub001/entity"
)

// SeedAdmin creates the first admin account from env, once.
func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Email:     email,
		Password:  string(hash),
		FirstName: "Admin",
		LastName:  "Seed",
		Role:      entity.RoleAdmin,
	}
	return db.Create(&admin).Error
}

// SeedMenu loads a starter menu on an empty database.
func SeedMenu() error {
	db := DB()

	var count int64
	db.Model(&entity.MenuCategory{}).Count(&count)
	if count > 0 {
		return nil
	}

	categories := []struct {
		name  string
		order int
		items []entity.MenuItem
	}{
		{"Wraps", 1, []entity.MenuItem{
			{Name: "Lamb Shawarma Wrap", Description: "Slow-roasted lamb, garlic sauce, pickles", Price: 895},
			{Name: "Falafel Wrap", Description: "Crispy falafel, hummus, salad", Price: 745, Vegetarian: true, Vegan: true},
		}},
		{"Bowls", 2, []entity.MenuItem{
			{Name: "Chicken Shish Bowl", Description: "Marinated chicken over rice", Price: 995},
			{Name: "Halloumi Bowl", Description: "Grilled halloumi, couscous, roast veg", Price: 925, Vegetarian: true, GlutenFree: true},
		}},
		{"Sides", 3, []entity.MenuItem{
			{Name: "Salted Fries", Price: 350, Vegetarian: true, Vegan: true, GlutenFree: true},
			{Name: "Baklava", Price: 295, Vegetarian: true},
		}},
		{"Drinks", 4, []entity.MenuItem{
			{Name: "Fresh Mint Lemonade", Price: 325, Vegetarian: true, Vegan: true, GlutenFree: true},
		}},
	}

	for _, c := range categories {
		cat := entity.MenuCategory{Name: c.name, SortOrder: c.order}
		if err := db.FirstOrCreate(&cat, entity.MenuCategory{Name: c.name}).Error; err != nil {
			return err
		}
		for _, it := range c.items {
			it.CategoryID = cat.ID
			it.Available = true
			if err := db.Create(&it).Error; err != nil {
				return err
			}
		}
	}

	log.Println("starter menu seeded")
	return nil
}
