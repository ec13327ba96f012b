package entities

import "time"

type Menu struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null;index" json:"name"`
	Details   *string   `json:"details"`
	Price     float64   `gorm:"not null" json:"price"`
	Image     *string   `json:"image"`
	CreatedOn time.Time `gorm:"autoCreateTime" json:"created_on"`
}

func (Menu) TableName() string {
	return "menus"
}

type Order struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FirstName string    `gorm:"not null" json:"first_name"`
	LastName  string    `gorm:"not null" json:"last_name"`
	Phone     string    `gorm:"not null" json:"phone"`
	OrderedOn time.Time `gorm:"autoCreateTime" json:"ordered_on"`

	// Loaded explicitly by the orders repository.
	Items []OrderItem `gorm:"-" json:"order_items"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem is a single menu line of an order. Price is captured when the
// order is placed and never re-read from the menu.
type OrderItem struct {
	OrderID        uint    `gorm:"primaryKey;autoIncrement:false" json:"order_id"`
	MenuID         uint    `gorm:"primaryKey;autoIncrement:false;index" json:"menu_id"`
	Amount         int     `gorm:"not null" json:"amount"`
	Price          float64 `gorm:"not null" json:"price"`
	AdditionalInfo *string `gorm:"type:text" json:"additional_info"`

	Order Order `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Menu  *Menu `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"menu,omitempty"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
