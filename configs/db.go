package configs

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/VersaceXcodes/salama-lama-food-truck-sub001/entity"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {
	db.AutoMigrate(
		&entity.User{},
		&entity.MenuCategory{}, &entity.MenuItem{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{}, &entity.OrderStatusHistory{},
		&entity.Discount{},
		&entity.LoyaltyAccount{}, &entity.LoyaltyTransaction{},
		&entity.CateringInquiry{},
		&entity.ContactMessage{},
		&entity.PaymentMethod{},
	)
}
