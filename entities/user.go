package entities

import "time"

type Role string

const (
	RoleFarmer   Role = "farmer"
	RoleSupplier Role = "supplier"
	RoleLender   Role = "lender"
	RoleAdmin    Role = "admin"
)

type User struct {
	UserID       uint   `gorm:"primaryKey" json:"user_id"`
	Email        string `gorm:"uniqueIndex" json:"email"`
	PasswordHash string `json:"-"`
	Name         string `json:"name"`
	Role         Role   `json:"role"` // farmer|supplier|lender|admin

	CreatedAt time.Time
	UpdatedAt time.Time
}
