package models

import "time"

// Product represents an inventory item.
type Product struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	Description *string   `json:"description" gorm:"size:500" validate:"omitnil,max=500"`
	Quantity    int       `json:"quantity" gorm:"not null;default:0" validate:"gte=0"`
	Price       float64   `json:"price" gorm:"not null" validate:"required,gt=0"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProductCreate is the request body for creating a product.
// Quantity defaults to zero and description stays null when omitted.
type ProductCreate struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Description *string `json:"description" validate:"omitnil,max=500"`
	Quantity    int     `json:"quantity" validate:"gte=0"`
	Price       float64 `json:"price" validate:"required,gt=0"`
}

// ProductUpdate is the request body for a partial update. Nil fields are
// left unchanged; present fields must still satisfy the entity constraints.
type ProductUpdate struct {
	Name        *string  `json:"name" validate:"omitnil,min=1,max=100"`
	Description *string  `json:"description" validate:"omitnil,max=500"`
	Quantity    *int     `json:"quantity" validate:"omitnil,gte=0"`
	Price       *float64 `json:"price" validate:"omitnil,gt=0"`
}
