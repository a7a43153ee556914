package model

import "time"

// Comment: комментарий пользователя к отзыву.
type Comment struct {
	ID   string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Text string `gorm:"size:256" json:"comment"`

	UserID   string `gorm:"not null;type:varchar(36);index" json:"user_id"`
	ReviewID string `gorm:"not null;type:varchar(36);index" json:"review_id"`

	User   *User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Review *Review `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
