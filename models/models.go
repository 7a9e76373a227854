package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// --- JWT & Auth ---

type JwtClaims struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// User represents someone allowed to query the analytics API
// (an admin or an analyst).
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// --- Core Models ---

// SaleRecord is a single sales transaction as delivered by the data
// loader. CustomerID is an opaque stable key assigned upstream; the
// analytics code never tries to derive identity from other fields.
type SaleRecord struct {
	OrderID    string    `json:"orderId"`
	CustomerID string    `json:"customerId"`
	OrderDate  time.Time `json:"orderDate"`
	Product    string    `json:"product"`
	Category   string    `json:"category"`
	Quantity   int       `json:"quantity"`
	UnitPrice  float64   `json:"unitPrice"`
	Total      float64   `json:"total"`
}
