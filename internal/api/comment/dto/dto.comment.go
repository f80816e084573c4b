// Package commentdto chứa DTO cho domain Comment.
package commentdto

import (
	commentmodels "video_tube/internal/api/comment/models"
	usermodels "video_tube/internal/api/user/models"
)

// CommentCreateInput là input khi thêm bình luận vào một video
type CommentCreateInput struct {
	Content string `json:"content" validate:"required"` // Nội dung bình luận
}

// CommentUpdateInput là input khi sửa bình luận
type CommentUpdateInput struct {
	Content string `json:"content" validate:"required"` // Nội dung mới
}

// CommentWithAuthor là comment kèm profile người viết (kết quả $lookup)
type CommentWithAuthor struct {
	commentmodels.Comment `bson:",inline"`
	Author                usermodels.Profile `json:"author" bson:"author"`
}
