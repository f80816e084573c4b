package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Playlist là một danh sách video do user tạo.
// Videos là danh sách ID, không trùng lặp (guard bằng filter $ne khi thêm).
type Playlist struct {
	ID          primitive.ObjectID   `json:"id" bson:"_id,omitempty"`        // ID của playlist
	Name        string               `json:"name" bson:"name"`               // Tên playlist
	Description string               `json:"description" bson:"description"` // Mô tả
	Videos      []primitive.ObjectID `json:"videos" bson:"videos"`           // ID các video trong playlist
	Owner       primitive.ObjectID   `json:"owner" bson:"owner"`             // Người tạo
	CreatedAt   int64                `json:"createdAt" bson:"createdAt"`     // Thời gian tạo (unix milli)
	UpdatedAt   int64                `json:"updatedAt" bson:"updatedAt"`     // Thời gian cập nhật cuối (unix milli)
}
