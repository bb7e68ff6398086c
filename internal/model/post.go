package model

import (
	"time"
)

type Post struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	UserID    uint64    `gorm:"not null;index:idx_user_id" json:"user_id"`
	Title     string    `gorm:"type:varchar(255)" json:"title"`
	Content   string    `gorm:"not null" json:"content"`
	IsDeleted bool      `gorm:"type:tinyint(1);not null;default:0" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 关联关系
	User     User      `gorm:"foreignKey:UserID;references:ID" json:"-"`
	Hashtags []Hashtag `gorm:"many2many:post_hashtags" json:"hashtags"`
}

func (Post) TableName() string {
	return "posts"
}
