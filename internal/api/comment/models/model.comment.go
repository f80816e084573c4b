package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Comment là một bình luận gắn với một video
type Comment struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`    // ID của comment
	Content   string             `json:"content" bson:"content"`     // Nội dung bình luận
	Video     primitive.ObjectID `json:"video" bson:"video"`         // Video được bình luận
	Owner     primitive.ObjectID `json:"owner" bson:"owner"`         // Người viết bình luận
	CreatedAt int64              `json:"createdAt" bson:"createdAt"` // Thời gian tạo (unix milli)
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật cuối (unix milli)
}
