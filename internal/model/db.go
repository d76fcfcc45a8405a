package model

import "time"

type User struct {
	UserID    int64  `gorm:"primaryKey;autoIncrement:false"`
	FirstName string `gorm:"size:128;not null"`
	LastName  string `gorm:"size:128;not null"`
	Email     string `gorm:"size:255;not null"`
	Phone     string `gorm:"size:32;not null"`
	Language  string `gorm:"size:8;not null;default:uz"`
	PromoUsed bool   `gorm:"not null;default:false"`
	IsAdmin   bool   `gorm:"not null;default:false"`
	CreatedAt time.Time
}

// CartItem is one (user, product) line; repeated adds bump Quantity instead
// of inserting a second row.
type CartItem struct {
	ID        uint  `gorm:"primaryKey"`
	UserID    int64 `gorm:"uniqueIndex:idx_cart_user_product;not null"`
	ProductID int64 `gorm:"uniqueIndex:idx_cart_user_product;not null"`
	// Price is the discounted unit price snapshotted at add time.
	Title    string  `gorm:"size:255;not null"`
	Price    float64 `gorm:"not null"`
	Quantity int     `gorm:"not null;default:1"`
	Image    string  `gorm:"size:512"`
}

func (CartItem) TableName() string { return "cart" }

type Order struct {
	ID             uint  `gorm:"primaryKey"`
	UserID         int64 `gorm:"index;not null"`
	TotalAmount    float64
	DiscountAmount float64
	FinalAmount    float64
	PaymentMethod  string `gorm:"size:32;not null"`
	Latitude       *float64
	Longitude      *float64
	Status         string `gorm:"size:32;not null;default:pending"`
	CreatedAt      time.Time
}

// OrderItem snapshots a cart line at order time; catalog changes after that
// never touch it.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey"`
	OrderID   uint    `gorm:"index;not null"`
	ProductID int64   `gorm:"not null"`
	Title     string  `gorm:"size:255;not null"`
	Price     float64 `gorm:"not null"`
	Quantity  int     `gorm:"not null"`
}
