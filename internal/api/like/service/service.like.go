// Package likesvc chứa service data access cho domain Like.
// File: service.like.go - giữ tên cấu trúc cũ (service.<domain>.go).
package likesvc

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	basesvc "video_tube/internal/api/base/service"
	likedto "video_tube/internal/api/like/dto"
	likemodels "video_tube/internal/api/like/models"
	"video_tube/internal/common"
	"video_tube/internal/global"
	"video_tube/internal/registry"
)

// LikeService là service quản lý lượt thích
type LikeService struct {
	basesvc.BaseServiceMongo[likemodels.Like]
}

// NewLikeService tạo mới LikeService
func NewLikeService(collections *registry.Registry[*mongo.Collection]) (*LikeService, error) {
	collection, exist := collections.Get(global.MongoDB_ColNames.Likes)
	if !exist {
		return nil, fmt.Errorf("failed to get likes collection: %v", common.ErrNotFound)
	}

	return &LikeService{
		BaseServiceMongo: basesvc.NewBaseServiceMongo[likemodels.Like](collection),
	}, nil
}

// BuildToggleFilter dựng filter xác định duy nhất một like theo (actor, target, kind).
// Hàm thuần để test không cần database.
func BuildToggleFilter(kind likemodels.TargetKind, targetID, actor primitive.ObjectID) bson.M {
	return bson.M{
		string(kind): targetID,
		"likedBy":    actor,
	}
}

// newLike dựng document like mới với đúng một trường target được set
func newLike(kind likemodels.TargetKind, targetID, actor primitive.ObjectID) likemodels.Like {
	like := likemodels.Like{LikedBy: actor}
	switch kind {
	case likemodels.TargetVideo:
		like.Video = &targetID
	case likemodels.TargetComment:
		like.Comment = &targetID
	case likemodels.TargetTweet:
		like.Tweet = &targetID
	}
	return like
}

// Toggle đảo trạng thái like của actor với một target.
// Xóa-nếu-có rồi tạo-nếu-chưa, mỗi nhánh là một thao tác atomic trên store;
// race hai toggle cùng lúc được chặn bởi unique index (likedBy, target).
func (s *LikeService) Toggle(ctx context.Context, kind likemodels.TargetKind, targetID, actor primitive.ObjectID) (*likedto.ToggleResult, error) {
	filter := BuildToggleFilter(kind, targetID, actor)

	_, err := s.FindOneAndDelete(ctx, filter, nil)
	if err == nil {
		return &likedto.ToggleResult{Liked: false}, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	created, err := s.InsertOne(ctx, newLike(kind, targetID, actor))
	if err != nil {
		// Toggle khác vừa chèn trước (race): coi như đã like, trả về bản ghi hiện có
		if errors.Is(err, common.ErrMongoDuplicate) {
			existing, findErr := s.FindOne(ctx, filter, nil)
			if findErr != nil {
				return nil, findErr
			}
			return &likedto.ToggleResult{Liked: true, Like: &existing}, nil
		}
		return nil, err
	}

	return &likedto.ToggleResult{Liked: true, Like: &created}, nil
}

// GetLikedVideos liệt kê các video mà actor đã thích, mới like trước.
// Trả về ErrNotFound khi danh sách rỗng (policy kế thừa, không trả danh sách rỗng).
func (s *LikeService) GetLikedVideos(ctx context.Context, actor primitive.ObjectID) ([]likedto.LikedVideo, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"likedBy": actor, "video": bson.M{"$exists": true, "$ne": nil}}}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         global.MongoDB_ColNames.Videos,
			"localField":   "video",
			"foreignField": "_id",
			"as":           "video",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$video"}}},
	}

	var items []likedto.LikedVideo
	if err := s.Aggregate(ctx, pipeline, &items); err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return nil, common.ErrNotFound
	}

	return items, nil
}
