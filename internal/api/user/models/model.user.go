package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User đại diện cho một tài khoản trong collection users.
// Domain này chỉ đọc users để join profile, không quản lý vòng đời tài khoản.
type User struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của user
	Username   string             `json:"username" bson:"username"`          // Tên đăng nhập (unique)
	FullName   string             `json:"fullName" bson:"fullName"`          // Tên hiển thị
	Email      string             `json:"email,omitempty" bson:"email,omitempty"`
	Avatar     string             `json:"avatar" bson:"avatar"`         // URL ảnh đại diện
	CoverImage string             `json:"coverImage" bson:"coverImage"` // URL ảnh bìa kênh

	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo tài khoản
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}

// Profile là projection công khai của User, dùng cho các aggregation join.
type Profile struct {
	ID       primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của user
	Username string             `json:"username" bson:"username"`          // Tên đăng nhập
	FullName string             `json:"fullName" bson:"fullName"`          // Tên hiển thị
	Avatar   string             `json:"avatar" bson:"avatar"`              // URL ảnh đại diện
}
