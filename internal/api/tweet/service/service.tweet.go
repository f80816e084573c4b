// Package tweetsvc chứa service data access cho domain Tweet.
// File: service.tweet.go - giữ tên cấu trúc cũ (service.<domain>.go).
package tweetsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	basesvc "video_tube/internal/api/base/service"
	tweetdto "video_tube/internal/api/tweet/dto"
	tweetmodels "video_tube/internal/api/tweet/models"
	"video_tube/internal/common"
	"video_tube/internal/global"
	"video_tube/internal/registry"
)

// TweetService là service quản lý tweet
type TweetService struct {
	basesvc.BaseServiceMongo[tweetmodels.Tweet]
}

// NewTweetService tạo mới TweetService
func NewTweetService(collections *registry.Registry[*mongo.Collection]) (*TweetService, error) {
	collection, exist := collections.Get(global.MongoDB_ColNames.Tweets)
	if !exist {
		return nil, fmt.Errorf("failed to get tweets collection: %v", common.ErrNotFound)
	}

	return &TweetService{
		BaseServiceMongo: basesvc.NewBaseServiceMongo[tweetmodels.Tweet](collection),
	}, nil
}

// ListByOwner liệt kê tweet của một user, mới nhất trước, kèm profile người đăng.
// Trả về ErrNotFound khi danh sách rỗng (policy kế thừa, không trả danh sách rỗng).
func (s *TweetService) ListByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]tweetdto.TweetWithAuthor, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"owner": ownerID}}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
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

	var items []tweetdto.TweetWithAuthor
	if err := s.Aggregate(ctx, pipeline, &items); err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return nil, common.ErrNotFound
	}

	return items, nil
}

// UpdateOwned sửa nội dung một tweet thuộc sở hữu của actor.
// Ownership nằm trong filter nên check và update là một thao tác atomic.
func (s *TweetService) UpdateOwned(ctx context.Context, id, actor primitive.ObjectID, content string) (tweetmodels.Tweet, error) {
	return s.FindOneAndUpdate(ctx, bson.M{"_id": id, "owner": actor}, &basesvc.UpdateData{
		Set: map[string]interface{}{"content": content},
	}, nil)
}

// DeleteOwned xóa một tweet thuộc sở hữu của actor
func (s *TweetService) DeleteOwned(ctx context.Context, id, actor primitive.ObjectID) error {
	_, err := s.FindOneAndDelete(ctx, bson.M{"_id": id, "owner": actor}, nil)
	return err
}
