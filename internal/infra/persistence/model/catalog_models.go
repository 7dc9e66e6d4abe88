package model

import (
	"time"

	"github.com/google/uuid"
)

// RestaurantModel is the GORM-specific struct for the 'restaurants' table.
type RestaurantModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name         string    `gorm:"type:varchar(50);not null"`
	Address      string    `gorm:"type:varchar(100);not null;default:''"`
	ContactPhone string    `gorm:"type:varchar(50);not null;default:''"`
}

// TableName explicitly sets the table name for GORM.
func (RestaurantModel) TableName() string {
	return "restaurants"
}

// ProductModel is the GORM-specific struct for the 'products' table.
type ProductModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name      string          `gorm:"type:varchar(50);not null"`
	Price     float64         `gorm:"type:decimal(8,2);not null"`
	MenuItems []MenuItemModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// MenuItemModel is the GORM-specific struct for the 'restaurant_menu_items'
// table. One row per (restaurant, product) pair.
type MenuItemModel struct {
	ID           uint            `gorm:"primaryKey"`
	RestaurantID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_menu_items_on_pair"`
	ProductID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_menu_items_on_pair"`
	Availability bool            `gorm:"not null;default:true;index"`
	Restaurant   RestaurantModel `gorm:"foreignKey:RestaurantID"`
}

// TableName explicitly sets the table name for GORM.
func (MenuItemModel) TableName() string {
	return "restaurant_menu_items"
}

// OrderModel is the GORM-specific struct for the 'orders' table.
type OrderModel struct {
	ID            uuid.UUID        `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Status        string           `gorm:"type:varchar(16);not null;default:'new';index"`
	PaymentMethod string           `gorm:"type:varchar(16);not null;default:'unknown'"`
	Address       string           `gorm:"type:varchar(200);not null"`
	FirstName     string           `gorm:"type:varchar(50);not null"`
	LastName      string           `gorm:"type:varchar(50);not null"`
	PhoneNumber   string           `gorm:"type:varchar(50);not null;index"`
	Comment       string           `gorm:"type:text;not null;default:''"`
	RestaurantID  *uuid.UUID       `gorm:"type:uuid"`
	Restaurant    *RestaurantModel `gorm:"foreignKey:RestaurantID"`
	Items         []OrderItemModel `gorm:"foreignKey:OrderID"`
	CreatedAt     time.Time        `gorm:"index"`
	CalledAt      *time.Time
	DeliveredAt   *time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel is the GORM-specific struct for the 'order_items' table.
type OrderItemModel struct {
	ID        uint         `gorm:"primaryKey"`
	OrderID   uuid.UUID    `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID    `gorm:"type:uuid;not null"`
	Product   ProductModel `gorm:"foreignKey:ProductID"`
	Quantity  int          `gorm:"not null;check:quantity >= 1"`
	ItemPrice float64      `gorm:"type:decimal(9,2);not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
