package domain

import "time"

type Role string

const (
	RoleShopper Role = "shopper"
	RoleSeller  Role = "seller"
	RoleAdmin   Role = "admin"
)

type User struct {
	ID                string    `gorm:"primaryKey" json:"id"`
	Email             string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash      string    `json:"-"`
	Name              string    `json:"name"`
	Role              Role      `gorm:"index" json:"role"`
	IsVerified        bool      `gorm:"not null;default:false" json:"isVerified"`
	VerificationToken *string   `gorm:"index" json:"-"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type Store struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsApproved  bool      `gorm:"not null;default:false" json:"isApproved"`
	OwnerID     string    `gorm:"uniqueIndex" json:"ownerId"`
	Owner       *User     `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
