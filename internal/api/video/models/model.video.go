package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"video_tube/internal/media"
)

// Video đại diện cho một video đã publish lên nền tảng
type Video struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của video
	VideoFile   media.Asset        `json:"videoFile" bson:"videoFile"`        // File video trên media store
	Thumbnail   media.Asset        `json:"thumbnail" bson:"thumbnail"`        // Ảnh thumbnail trên media store
	Title       string             `json:"title" bson:"title"`                // Tiêu đề
	Description string             `json:"description" bson:"description"`    // Mô tả
	Duration    float64            `json:"duration" bson:"duration"`          // Thời lượng (giây)
	Views       int64              `json:"views" bson:"views"`                // Số lượt xem
	IsPublished bool               `json:"isPublished" bson:"isPublished"`    // Trạng thái hiển thị công khai
	Owner       primitive.ObjectID `json:"owner" bson:"owner"`                // User sở hữu video

	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}
