package model

// Item: объект, на который пишутся отзывы (ресторан, магазин, кафе...).
type Item struct {
	ID       string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name     string `gorm:"not null;size:64" json:"name"`
	Category string `gorm:"not null;size:64" json:"category"`
}
