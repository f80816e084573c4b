package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Like là một lượt thích của user đối với đúng một target (video, comment hoặc tweet).
// Chỉ một trong ba trường target được set; unique index partial trên từng cặp
// (likedBy, target) đảm bảo mỗi user chỉ like một target một lần.
type Like struct {
	ID        primitive.ObjectID  `json:"id" bson:"_id,omitempty"`                 // ID của like
	Video     *primitive.ObjectID `json:"video,omitempty" bson:"video,omitempty"`     // Video được thích (nếu target là video)
	Comment   *primitive.ObjectID `json:"comment,omitempty" bson:"comment,omitempty"` // Comment được thích (nếu target là comment)
	Tweet     *primitive.ObjectID `json:"tweet,omitempty" bson:"tweet,omitempty"`     // Tweet được thích (nếu target là tweet)
	LikedBy   primitive.ObjectID  `json:"likedBy" bson:"likedBy"`                     // User thực hiện like
	CreatedAt int64               `json:"createdAt" bson:"createdAt"`                 // Thời gian tạo (unix milli)
	UpdatedAt int64               `json:"updatedAt" bson:"updatedAt"`                 // Thời gian cập nhật cuối (unix milli)
}

// TargetKind phân biệt loại target của một lượt thích
type TargetKind string

const (
	TargetVideo   TargetKind = "video"
	TargetComment TargetKind = "comment"
	TargetTweet   TargetKind = "tweet"
)

// Valid kiểm tra kind có thuộc ba loại target hợp lệ không
func (k TargetKind) Valid() bool {
	switch k {
	case TargetVideo, TargetComment, TargetTweet:
		return true
	}
	return false
}
