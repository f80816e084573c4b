// Package database - Index cho các collection của hệ thống.
// Các unique index compound ở đây là chốt chặn cuối cùng cho bất biến
// "mỗi (actor, target) chỉ có tối đa một quan hệ": hai request toggle chạy song song
// cùng insert sẽ có đúng một request thành công, request còn lại nhận duplicate key error.
package database

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"video_tube/internal/global"
)

// CreateIndexes tạo các index cần thiết cho tất cả collection.
// Gọi một lần lúc khởi động, sau khi đã kết nối database.
func CreateIndexes(ctx context.Context, db *mongo.Database) error {
	// likes: unique (likedBy, target) cho từng loại target.
	// Partial index vì mỗi document Like chỉ set đúng một trong ba field target.
	likes := db.Collection(global.MongoDB_ColNames.Likes)
	likeTargets := []string{"video", "comment", "tweet"}
	for _, target := range likeTargets {
		if _, err := likes.Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{
				{Key: "likedBy", Value: 1},
				{Key: target, Value: 1},
			},
			Options: options.Index().
				SetName("like_actor_" + target).
				SetUnique(true).
				SetPartialFilterExpression(bson.M{target: bson.M{"$exists": true}}),
		}); err != nil && !isIndexExistsError(err) {
			return err
		}
	}

	// subscriptions: unique (subscriber, channel)
	subscriptions := db.Collection(global.MongoDB_ColNames.Subscriptions)
	if _, err := subscriptions.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "subscriber", Value: 1},
			{Key: "channel", Value: 1},
		},
		Options: options.Index().SetName("subscription_subscriber_channel").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// videos: (owner, createdAt), list theo kênh, sort mặc định mới nhất trước
	videos := db.Collection(global.MongoDB_ColNames.Videos)
	if _, err := videos.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "owner", Value: 1},
			{Key: "createdAt", Value: -1},
		},
		Options: options.Index().SetName("video_owner_created"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// comments: (video, createdAt), list bình luận theo video, mới nhất trước
	comments := db.Collection(global.MongoDB_ColNames.Comments)
	if _, err := comments.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "video", Value: 1},
			{Key: "createdAt", Value: -1},
		},
		Options: options.Index().SetName("comment_video_created"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// playlists: (owner), list playlist theo người dùng
	playlists := db.Collection(global.MongoDB_ColNames.Playlists)
	if _, err := playlists.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "owner", Value: 1}},
		Options: options.Index().SetName("playlist_owner"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// tweets: (owner, createdAt), list tweet theo người dùng
	tweets := db.Collection(global.MongoDB_ColNames.Tweets)
	if _, err := tweets.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "owner", Value: 1},
			{Key: "createdAt", Value: -1},
		},
		Options: options.Index().SetName("tweet_owner_created"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "duplicate")
}
