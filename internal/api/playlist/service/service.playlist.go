// Package playlistsvc chứa service data access cho domain Playlist.
// File: service.playlist.go - giữ tên cấu trúc cũ (service.<domain>.go).
package playlistsvc

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	basesvc "video_tube/internal/api/base/service"
	playlistdto "video_tube/internal/api/playlist/dto"
	playlistmodels "video_tube/internal/api/playlist/models"
	"video_tube/internal/common"
	"video_tube/internal/global"
	"video_tube/internal/registry"
)

// Lỗi nghiệp vụ của playlist membership
var (
	ErrDuplicateMember = common.NewError(common.ErrCodeValidationInput, "Video đã có trong playlist", common.StatusBadRequest, nil)
	ErrMemberNotFound  = common.NewError(common.ErrCodeValidationInput, "Video không có trong playlist", common.StatusBadRequest, nil)
)

// PlaylistService là service quản lý playlist.
// Giữ thêm service video để kiểm tra video tồn tại trước khi thêm vào playlist.
type PlaylistService struct {
	basesvc.BaseServiceMongo[playlistmodels.Playlist]
	videos basesvc.BaseServiceMongo[bson.M]
}

// NewPlaylistService tạo mới PlaylistService
func NewPlaylistService(collections *registry.Registry[*mongo.Collection]) (*PlaylistService, error) {
	collection, exist := collections.Get(global.MongoDB_ColNames.Playlists)
	if !exist {
		return nil, fmt.Errorf("failed to get playlists collection: %v", common.ErrNotFound)
	}

	videoCollection, exist := collections.Get(global.MongoDB_ColNames.Videos)
	if !exist {
		return nil, fmt.Errorf("failed to get videos collection: %v", common.ErrNotFound)
	}

	return &PlaylistService{
		BaseServiceMongo: basesvc.NewBaseServiceMongo[playlistmodels.Playlist](collection),
		videos:           basesvc.NewBaseServiceMongo[bson.M](videoCollection),
	}, nil
}

// Create tạo playlist mới với danh sách video rỗng
func (s *PlaylistService) Create(ctx context.Context, actor primitive.ObjectID, name, description string) (playlistmodels.Playlist, error) {
	return s.InsertOne(ctx, playlistmodels.Playlist{
		Name:        name,
		Description: description,
		Videos:      []primitive.ObjectID{},
		Owner:       actor,
	})
}

// GetByIdWithVideos lấy một playlist kèm document đầy đủ của các video trong đó
func (s *PlaylistService) GetByIdWithVideos(ctx context.Context, id primitive.ObjectID) (*playlistdto.PlaylistWithVideos, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": id}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         global.MongoDB_ColNames.Videos,
			"localField":   "videos",
			"foreignField": "_id",
			"as":           "videoDocs",
		}}},
	}

	var results []playlistdto.PlaylistWithVideos
	if err := s.Aggregate(ctx, pipeline, &results); err != nil {
		return nil, err
	}

	if len(results) == 0 {
		return nil, common.ErrNotFound
	}

	return &results[0], nil
}

// ListByOwner liệt kê playlist của một user kèm document đầy đủ của các video, mới nhất trước.
// Trả về ErrNotFound khi user không có playlist nào (policy kế thừa, không trả danh sách rỗng).
func (s *PlaylistService) ListByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]playlistdto.PlaylistWithVideos, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"owner": ownerID}}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         global.MongoDB_ColNames.Videos,
			"localField":   "videos",
			"foreignField": "_id",
			"as":           "videoDocs",
		}}},
	}

	var results []playlistdto.PlaylistWithVideos
	if err := s.Aggregate(ctx, pipeline, &results); err != nil {
		return nil, err
	}

	if len(results) == 0 {
		return nil, common.ErrNotFound
	}

	return results, nil
}

// UpdateOwned cập nhật partial một playlist thuộc sở hữu của actor
func (s *PlaylistService) UpdateOwned(ctx context.Context, id, actor primitive.ObjectID, set map[string]interface{}) (playlistmodels.Playlist, error) {
	return s.FindOneAndUpdate(ctx, bson.M{"_id": id, "owner": actor}, &basesvc.UpdateData{Set: set}, nil)
}

// DeleteOwned xóa một playlist thuộc sở hữu của actor.
// Không xóa video bên trong, playlist chỉ tham chiếu.
func (s *PlaylistService) DeleteOwned(ctx context.Context, id, actor primitive.ObjectID) error {
	_, err := s.FindOneAndDelete(ctx, bson.M{"_id": id, "owner": actor}, nil)
	return err
}

// AddVideo thêm một video vào playlist thuộc sở hữu của actor.
// Guard $ne trong filter làm check-trùng và $push thành một thao tác atomic,
// hai request thêm cùng lúc không thể cùng append.
func (s *PlaylistService) AddVideo(ctx context.Context, playlistID, videoID, actor primitive.ObjectID) (playlistmodels.Playlist, error) {
	exists, err := s.videos.DocumentExists(ctx, bson.M{"_id": videoID})
	if err != nil {
		return playlistmodels.Playlist{}, err
	}
	if !exists {
		return playlistmodels.Playlist{}, common.ErrNotFound
	}

	filter := bson.M{"_id": playlistID, "owner": actor, "videos": bson.M{"$ne": videoID}}
	updated, err := s.FindOneAndUpdate(ctx, filter, &basesvc.UpdateData{
		Push: map[string]interface{}{"videos": videoID},
	}, nil)
	if err == nil {
		return updated, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return playlistmodels.Playlist{}, err
	}

	// Không match: phân biệt playlist không tồn tại với video đã có sẵn
	owned, probeErr := s.DocumentExists(ctx, bson.M{"_id": playlistID, "owner": actor})
	if probeErr != nil {
		return playlistmodels.Playlist{}, probeErr
	}
	if owned {
		return playlistmodels.Playlist{}, ErrDuplicateMember
	}
	return playlistmodels.Playlist{}, common.ErrNotFound
}

// RemoveVideo gỡ một video khỏi playlist thuộc sở hữu của actor.
// Guard videos trong filter làm check-thành-viên và $pull thành một thao tác atomic.
func (s *PlaylistService) RemoveVideo(ctx context.Context, playlistID, videoID, actor primitive.ObjectID) (playlistmodels.Playlist, error) {
	filter := bson.M{"_id": playlistID, "owner": actor, "videos": videoID}
	updated, err := s.FindOneAndUpdate(ctx, filter, &basesvc.UpdateData{
		Pull: map[string]interface{}{"videos": videoID},
	}, nil)
	if err == nil {
		return updated, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return playlistmodels.Playlist{}, err
	}

	// Không match: phân biệt playlist không tồn tại với video không nằm trong playlist
	owned, probeErr := s.DocumentExists(ctx, bson.M{"_id": playlistID, "owner": actor})
	if probeErr != nil {
		return playlistmodels.Playlist{}, probeErr
	}
	if owned {
		return playlistmodels.Playlist{}, ErrMemberNotFound
	}
	return playlistmodels.Playlist{}, common.ErrNotFound
}
