package models

import "time"

// ReviewLike records that one anonymous user liked one review. The
// (review_id, anonymous_user_id) pair is the identity; there is no
// surrogate key.
type ReviewLike struct {
	ReviewID        int64     `json:"review_id" gorm:"primaryKey;autoIncrement:false"`
	AnonymousUserID string    `json:"anonymous_user_id" gorm:"primaryKey;size:64"`
	LikedAt         time.Time `json:"liked_at" gorm:"autoCreateTime"`

	// Associations
	Review Review `json:"review,omitempty" gorm:"foreignKey:ReviewID;constraint:OnDelete:CASCADE;"`
}

func (ReviewLike) TableName() string {
	return "review_likes"
}
