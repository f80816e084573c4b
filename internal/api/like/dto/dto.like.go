// Package likedto chứa DTO cho domain Like.
package likedto

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	likemodels "video_tube/internal/api/like/models"
	videomodels "video_tube/internal/api/video/models"
)

// ToggleResult là kết quả của một lần toggle like.
// Liked = true kèm Like vừa tạo; Liked = false nghĩa là like cũ đã bị gỡ.
type ToggleResult struct {
	Liked bool             `json:"liked"`          // Trạng thái sau toggle
	Like  *likemodels.Like `json:"like,omitempty"` // Like vừa tạo (chỉ khi Liked = true)
}

// LikedVideo là một video trong danh sách video user đã thích (kết quả $lookup)
type LikedVideo struct {
	LikeID  primitive.ObjectID `json:"likeId" bson:"_id"`        // ID của like
	LikedAt int64              `json:"likedAt" bson:"createdAt"` // Thời điểm like (unix milli)
	Video   videomodels.Video  `json:"video" bson:"video"`       // Video đã thích
}
