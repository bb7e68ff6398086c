package model

import (
	"time"
)

type User struct {
	ID        uint64  `gorm:"primaryKey" json:"id"`
	Username  string  `gorm:"type:varchar(50);not null;uniqueIndex:idx_username" json:"username"`
	Nickname  string  `gorm:"type:varchar(50);not null" json:"nickname"`
	Bio       *string `gorm:"type:varchar(200)" json:"bio,omitempty"`
	IsPrivate bool    `gorm:"type:tinyint(1);not null;default:0" json:"is_private"`
	IsDeleted bool    `gorm:"type:tinyint(1);not null;default:0" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
