package models

import "time"

type Review struct {
	ID              int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	WebtoonID       string    `json:"webtoon_id" gorm:"size:64;not null;index;uniqueIndex:uniq_review_webtoon_user"`
	Content         string    `json:"content" gorm:"not null;type:text"`
	Rating          float64   `json:"rating" gorm:"not null;check:rating >= 0 AND rating <= 5"`
	Likes           int64     `json:"likes" gorm:"not null;default:0"`
	AnonymousUserID string    `json:"anonymous_user_id" gorm:"size:64;not null;index;uniqueIndex:uniq_review_webtoon_user"`
	CreatedAt       time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Review) TableName() string {
	return "reviews"
}
