// Package media cung cấp media store, nơi lưu trữ bền vững các file nhị phân
// (video, thumbnail) và trả về URL public + định danh để xóa về sau.
// Phần còn lại của hệ thống chỉ nhìn thấy interface Store với đúng hai thao tác.
package media

import (
	"context"
	"mime/multipart"
)

// Resource type của asset trên media store
const (
	ResourceTypeVideo = "video" // File video
	ResourceTypeImage = "image" // Ảnh (thumbnail, avatar)
)

// Asset mô tả một file đã được lưu trên media store
type Asset struct {
	URL          string `json:"url" bson:"url"`                   // URL public của file
	PublicID     string `json:"publicId" bson:"publicId"`         // Định danh trên media store (dùng để xóa)
	ResourceType string `json:"resourceType" bson:"resourceType"` // video hoặc image
}

// Store là interface của media store bên ngoài.
// Upload trả về lỗi là lỗi fatal của thao tác bao ngoài, không có retry.
// Delete coi file không tồn tại là thành công (idempotent).
type Store interface {
	Upload(ctx context.Context, file *multipart.FileHeader) (*Asset, error)
	Delete(ctx context.Context, publicID string, resourceType string) error
}
