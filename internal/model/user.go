package model

import "time"

// User: учётная запись. Password хранит bcrypt-дайджест и никогда не сериализуется.
type User struct {
	ID       string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Username string `gorm:"not null;uniqueIndex;size:64" json:"username"`
	Password string `gorm:"not null;size:256" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// Identity: проекция пользователя, которая попадает в контекст запроса.
type Identity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Identity возвращает публичную часть пользователя без хеша пароля.
func (u *User) Identity() *Identity {
	return &Identity{ID: u.ID, Username: u.Username}
}
