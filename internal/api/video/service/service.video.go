// Package videosvc chứa service data access cho domain Video.
// File: service.video.go - giữ tên cấu trúc cũ (service.<domain>.go).
package videosvc

import (
	"context"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	basemodels "video_tube/internal/api/base/models"
	basesvc "video_tube/internal/api/base/service"
	videodto "video_tube/internal/api/video/dto"
	videomodels "video_tube/internal/api/video/models"
	"video_tube/internal/common"
	"video_tube/internal/global"
	"video_tube/internal/logger"
	"video_tube/internal/media"
	"video_tube/internal/registry"
	"video_tube/internal/utility"
)

// VideoService là service quản lý video (CRUD + listing + media lifecycle).
type VideoService struct {
	basesvc.BaseServiceMongo[videomodels.Video]
	store media.Store
}

// NewVideoService tạo mới VideoService.
// Media store được truyền vào để service quản lý vòng đời asset (publish, thay thumbnail, xóa).
func NewVideoService(collections *registry.Registry[*mongo.Collection], store media.Store) (*VideoService, error) {
	collection, exist := collections.Get(global.MongoDB_ColNames.Videos)
	if !exist {
		return nil, fmt.Errorf("failed to get videos collection: %v", common.ErrNotFound)
	}

	return &VideoService{
		BaseServiceMongo: basesvc.NewBaseServiceMongo[videomodels.Video](collection),
		store:                store,
	}, nil
}

// Store trả về media store đang dùng (handler cần khi upload trong publish)
func (s *VideoService) Store() media.Store {
	return s.store
}

// BuildListFilter dựng filter MongoDB từ query liệt kê video.
// Hàm thuần để test không cần store. OwnerID đã được validate ở handler.
func BuildListFilter(q *videodto.VideoListQuery) bson.M {
	filter := bson.M{}
	if q.Query != "" {
		// Tìm substring trên title, không phân biệt hoa thường
		filter["title"] = bson.M{"$regex": regexp.QuoteMeta(q.Query), "$options": "i"}
	}
	if q.OwnerID != "" {
		filter["owner"] = utility.String2ObjectID(q.OwnerID)
	}
	return filter
}

// BuildListSort dựng sort MongoDB từ query liệt kê video.
// Mặc định: createdAt giảm dần (mới nhất trước).
func BuildListSort(sortBy, sortType string) bson.D {
	if sortBy == "" {
		sortBy = "createdAt"
	}
	direction := -1
	if sortType == "asc" {
		direction = 1
	}
	return bson.D{{Key: sortBy, Value: direction}}
}

// List liệt kê video với filter, sort và phân trang.
// Trả về ErrNotFound khi trang kết quả rỗng (policy kế thừa, không trả trang rỗng).
func (s *VideoService) List(ctx context.Context, q *videodto.VideoListQuery) (*basemodels.PaginateResult[videomodels.Video], error) {
	opts := options.Find().SetSort(BuildListSort(q.SortBy, q.SortType))

	result, err := s.FindWithPagination(ctx, BuildListFilter(q), q.Page, q.Limit, opts)
	if err != nil {
		return nil, err
	}

	if result.ItemCount == 0 {
		return nil, common.ErrNotFound
	}

	return result, nil
}

// GetByIdWithOwner lấy một video kèm profile chủ sở hữu (join qua $lookup users)
func (s *VideoService) GetByIdWithOwner(ctx context.Context, id primitive.ObjectID) (*videodto.VideoWithOwner, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": id}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         global.MongoDB_ColNames.Users,
			"localField":   "owner",
			"foreignField": "_id",
			"as":           "ownerProfile",
			"pipeline": mongo.Pipeline{
				{{Key: "$project", Value: bson.M{"username": 1, "fullName": 1, "avatar": 1}}},
			},
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$ownerProfile", "preserveNullAndEmptyArrays": true}}},
	}

	var results []videodto.VideoWithOwner
	if err := s.Aggregate(ctx, pipeline, &results); err != nil {
		return nil, err
	}

	if len(results) == 0 {
		return nil, common.ErrNotFound
	}

	return &results[0], nil
}

// Publish upload cả hai asset rồi tạo document video.
// Upload xong mới persist; nếu persist lỗi thì asset đã upload bị bỏ lại (không rollback).
func (s *VideoService) Publish(ctx context.Context, video videomodels.Video) (videomodels.Video, error) {
	return s.InsertOne(ctx, video)
}

// UpdateOwned cập nhật partial một video thuộc sở hữu của actor.
// Ownership nằm trong filter nên check và update là một thao tác atomic.
func (s *VideoService) UpdateOwned(ctx context.Context, id, actor primitive.ObjectID, set map[string]interface{}) (videomodels.Video, error) {
	return s.FindOneAndUpdate(ctx, bson.M{"_id": id, "owner": actor}, &basesvc.UpdateData{Set: set}, nil)
}

// ReplaceThumbnail gắn thumbnail mới vào $set và xóa asset cũ khỏi media store.
// Thứ tự: upload mới (ở handler) → persist → xóa cũ. Xóa lỗi chỉ log,
// asset mồ côi chấp nhận được, còn mất thumbnail đang dùng thì không.
func (s *VideoService) ReplaceThumbnail(ctx context.Context, id, actor primitive.ObjectID, set map[string]interface{}, newThumb *media.Asset) (videomodels.Video, error) {
	// Lấy thumbnail hiện tại trước khi ghi đè
	current, err := s.FindOne(ctx, bson.M{"_id": id, "owner": actor}, nil)
	if err != nil {
		return videomodels.Video{}, err
	}

	set["thumbnail"] = newThumb

	updated, err := s.FindOneAndUpdate(ctx, bson.M{"_id": id, "owner": actor}, &basesvc.UpdateData{Set: set}, nil)
	if err != nil {
		return videomodels.Video{}, err
	}

	if current.Thumbnail.PublicID != "" {
		if delErr := s.store.Delete(ctx, current.Thumbnail.PublicID, current.Thumbnail.ResourceType); delErr != nil {
			logger.GetAppLogger().WithError(delErr).WithField("publicId", current.Thumbnail.PublicID).
				Warn("Không xóa được thumbnail cũ, asset bị bỏ lại trên media store")
		}
	}

	return updated, nil
}

// DeleteOwned xóa cứng một video thuộc sở hữu của actor, kèm cả hai asset trên media store.
// Xóa document trước (FindOneAndDelete trả về document để biết asset nào cần xóa);
// lỗi xóa asset chỉ log, không fail request.
func (s *VideoService) DeleteOwned(ctx context.Context, id, actor primitive.ObjectID) error {
	deleted, err := s.FindOneAndDelete(ctx, bson.M{"_id": id, "owner": actor}, nil)
	if err != nil {
		return err
	}

	for _, asset := range []media.Asset{deleted.VideoFile, deleted.Thumbnail} {
		if asset.PublicID == "" {
			continue
		}
		if delErr := s.store.Delete(ctx, asset.PublicID, asset.ResourceType); delErr != nil {
			logger.GetAppLogger().WithError(delErr).WithField("publicId", asset.PublicID).
				Warn("Không xóa được asset của video đã xóa, asset bị bỏ lại trên media store")
		}
	}

	return nil
}

// TogglePublish đảo trạng thái isPublished của một video thuộc sở hữu của actor.
// Dùng update pipeline để flip atomic, không cần đọc trước.
func (s *VideoService) TogglePublish(ctx context.Context, id, actor primitive.ObjectID) (videomodels.Video, error) {
	pipeline := bson.A{
		bson.M{"$set": bson.M{
			"isPublished": bson.M{"$not": "$isPublished"},
			"updatedAt":   bson.M{"$toLong": "$$NOW"},
		}},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated videomodels.Video
	err := s.Collection().FindOneAndUpdate(ctx, bson.M{"_id": id, "owner": actor}, pipeline, opts).Decode(&updated)
	if err != nil {
		return videomodels.Video{}, common.ConvertMongoError(err)
	}

	return updated, nil
}
