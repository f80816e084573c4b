// Package commentsvc chứa service data access cho domain Comment.
// File: service.comment.go - giữ tên cấu trúc cũ (service.<domain>.go).
package commentsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	basemodels "video_tube/internal/api/base/models"
	basesvc "video_tube/internal/api/base/service"
	commentdto "video_tube/internal/api/comment/dto"
	commentmodels "video_tube/internal/api/comment/models"
	"video_tube/internal/common"
	"video_tube/internal/global"
	"video_tube/internal/registry"
)

// CommentService là service quản lý bình luận.
// Giữ thêm service video để kiểm tra video tồn tại trước khi thêm bình luận.
type CommentService struct {
	basesvc.BaseServiceMongo[commentmodels.Comment]
	videos basesvc.BaseServiceMongo[bson.M]
}

// NewCommentService tạo mới CommentService
func NewCommentService(collections *registry.Registry[*mongo.Collection]) (*CommentService, error) {
	collection, exist := collections.Get(global.MongoDB_ColNames.Comments)
	if !exist {
		return nil, fmt.Errorf("failed to get comments collection: %v", common.ErrNotFound)
	}

	videoCollection, exist := collections.Get(global.MongoDB_ColNames.Videos)
	if !exist {
		return nil, fmt.Errorf("failed to get videos collection: %v", common.ErrNotFound)
	}

	return &CommentService{
		BaseServiceMongo: basesvc.NewBaseServiceMongo[commentmodels.Comment](collection),
		videos:           basesvc.NewBaseServiceMongo[bson.M](videoCollection),
	}, nil
}

// Create thêm bình luận vào một video.
// Video phải tồn tại, nếu không trả về ErrNotFound.
func (s *CommentService) Create(ctx context.Context, videoID, actor primitive.ObjectID, content string) (commentmodels.Comment, error) {
	exists, err := s.videos.DocumentExists(ctx, bson.M{"_id": videoID})
	if err != nil {
		return commentmodels.Comment{}, err
	}
	if !exists {
		return commentmodels.Comment{}, common.ErrNotFound
	}

	return s.InsertOne(ctx, commentmodels.Comment{
		Content: content,
		Video:   videoID,
		Owner:   actor,
	})
}

// ListByVideo liệt kê bình luận của một video, mới nhất trước, kèm profile người viết.
// Trả về ErrNotFound khi trang kết quả rỗng (policy kế thừa, không trả trang rỗng).
func (s *CommentService) ListByVideo(ctx context.Context, videoID primitive.ObjectID, page, limit int64) (*basemodels.PaginateResult[commentdto.CommentWithAuthor], error) {
	page, limit = basemodels.NormalizePage(page, limit)

	total, err := s.CountDocuments(ctx, bson.M{"video": videoID})
	if err != nil {
		return nil, err
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"video": videoID}}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		{{Key: "$skip", Value: (page - 1) * limit}},
		{{Key: "$limit", Value: limit}},
		{{Key: "$lookup", Value: bson.M{
			"from":         global.MongoDB_ColNames.Users,
			"localField":   "owner",
			"foreignField": "_id",
			"as":           "author",
			"pipeline": mongo.Pipeline{
				{{Key: "$project", Value: bson.M{"username": 1, "fullName": 1, "avatar": 1}}},
			},
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$author", "preserveNullAndEmptyArrays": true}}},
	}

	var items []commentdto.CommentWithAuthor
	if err := s.Aggregate(ctx, pipeline, &items); err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return nil, common.ErrNotFound
	}

	return &basemodels.PaginateResult[commentdto.CommentWithAuthor]{
		Page:      page,
		Limit:     limit,
		ItemCount: int64(len(items)),
		Items:     items,
		Total:     total,
		TotalPage: basemodels.TotalPages(total, limit),
	}, nil
}

// UpdateOwned sửa nội dung một bình luận thuộc sở hữu của actor.
// Ownership nằm trong filter nên check và update là một thao tác atomic.
func (s *CommentService) UpdateOwned(ctx context.Context, id, actor primitive.ObjectID, content string) (commentmodels.Comment, error) {
	return s.FindOneAndUpdate(ctx, bson.M{"_id": id, "owner": actor}, &basesvc.UpdateData{
		Set: map[string]interface{}{"content": content},
	}, nil)
}

// DeleteOwned xóa một bình luận thuộc sở hữu của actor
func (s *CommentService) DeleteOwned(ctx context.Context, id, actor primitive.ObjectID) error {
	_, err := s.FindOneAndDelete(ctx, bson.M{"_id": id, "owner": actor}, nil)
	return err
}
