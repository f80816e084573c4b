package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Tweet là một bài đăng ngắn dạng text của user
type Tweet struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`    // ID của tweet
	Content   string             `json:"content" bson:"content"`     // Nội dung tweet
	Owner     primitive.ObjectID `json:"owner" bson:"owner"`         // Người đăng
	CreatedAt int64              `json:"createdAt" bson:"createdAt"` // Thời gian tạo (unix milli)
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật cuối (unix milli)
}
