package domain

import "time"

type Review struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"index:idx_review_user_product,unique" json:"userId"`
	User      *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	ProductID string    `gorm:"index:idx_review_user_product,unique" json:"productId"`
	Product   *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Rating    int       `gorm:"not null" json:"rating"`
	Comment   *string   `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
