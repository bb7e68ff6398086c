package model

import (
	"time"
)

type Hashtag struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_name" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func (Hashtag) TableName() string {
	return "hashtags"
}
