package model

import "time"

// DefaultRanking подставляется, если оценка в запросе не указана.
const DefaultRanking = 3

// Review: отзыв пользователя на item. Один пользователь: не более одного отзыва на item.
type Review struct {
	ID      string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Text    string `gorm:"size:256" json:"review_text"`
	Ranking int    `gorm:"not null" json:"ranking"`

	// владелец задаётся при создании и больше не меняется
	UserID string `gorm:"not null;type:varchar(36);uniqueIndex:idx_review_user_item" json:"user_id"`
	ItemID string `gorm:"not null;type:varchar(36);uniqueIndex:idx_review_user_item;index" json:"item_id"`

	// Связи
	User *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Item *Item `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
