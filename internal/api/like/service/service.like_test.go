// Package likesvc - Test dựng filter toggle, document like và nghiệp vụ toggle trên store giả lập.
package likesvc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "video_tube/internal/api/base/service"
	likemodels "video_tube/internal/api/like/models"
	"video_tube/internal/common"
)

func TestBuildToggleFilter(t *testing.T) {
	target := primitive.NewObjectID()
	actor := primitive.NewObjectID()

	for _, kind := range []likemodels.TargetKind{likemodels.TargetVideo, likemodels.TargetComment, likemodels.TargetTweet} {
		filter := BuildToggleFilter(kind, target, actor)
		require.Len(t, filter, 2, "filter phải có đúng 2 điều kiện")
		assert.Equal(t, target, filter[string(kind)])
		assert.Equal(t, actor, filter["likedBy"])
	}
}

func TestNewLike_ChiMotTargetDuocSet(t *testing.T) {
	target := primitive.NewObjectID()
	actor := primitive.NewObjectID()

	cases := []struct {
		kind  likemodels.TargetKind
		check func(l likemodels.Like) *primitive.ObjectID
	}{
		{likemodels.TargetVideo, func(l likemodels.Like) *primitive.ObjectID { return l.Video }},
		{likemodels.TargetComment, func(l likemodels.Like) *primitive.ObjectID { return l.Comment }},
		{likemodels.TargetTweet, func(l likemodels.Like) *primitive.ObjectID { return l.Tweet }},
	}

	for _, c := range cases {
		like := newLike(c.kind, target, actor)

		require.NotNil(t, c.check(like), "target %s phải được set", c.kind)
		assert.Equal(t, target, *c.check(like))
		assert.Equal(t, actor, like.LikedBy)

		// Đếm số target được set
		count := 0
		for _, p := range []*primitive.ObjectID{like.Video, like.Comment, like.Tweet} {
			if p != nil {
				count++
			}
		}
		assert.Equal(t, 1, count, "document like chỉ được set đúng một target")
	}
}

func TestTargetKind_Valid(t *testing.T) {
	assert.True(t, likemodels.TargetVideo.Valid())
	assert.True(t, likemodels.TargetComment.Valid())
	assert.True(t, likemodels.TargetTweet.Valid())
	assert.False(t, likemodels.TargetKind("playlist").Valid())
	assert.False(t, likemodels.TargetKind("").Valid())
}

// fakeLikeStore giả lập store like trong bộ nhớ, key theo (target, likedBy).
// insertDuplicate giả lập một toggle khác chèn xen giữa bước xóa và bước chèn:
// lần InsertOne kế tiếp ghi document của toggle kia rồi trả về lỗi trùng key.
type fakeLikeStore struct {
	basesvc.BaseServiceMongo[likemodels.Like]

	docs            map[string]likemodels.Like
	insertDuplicate bool
}

func newFakeLikeStore() *fakeLikeStore {
	return &fakeLikeStore{docs: map[string]likemodels.Like{}}
}

func likeKey(l likemodels.Like) string {
	switch {
	case l.Video != nil:
		return "video/" + l.Video.Hex() + "/" + l.LikedBy.Hex()
	case l.Comment != nil:
		return "comment/" + l.Comment.Hex() + "/" + l.LikedBy.Hex()
	default:
		return "tweet/" + l.Tweet.Hex() + "/" + l.LikedBy.Hex()
	}
}

func filterKey(filter bson.M) string {
	for _, k := range []string{"video", "comment", "tweet"} {
		if id, ok := filter[k].(primitive.ObjectID); ok {
			return k + "/" + id.Hex() + "/" + filter["likedBy"].(primitive.ObjectID).Hex()
		}
	}
	return ""
}

func (f *fakeLikeStore) InsertOne(_ context.Context, data likemodels.Like) (likemodels.Like, error) {
	data.ID = primitive.NewObjectID()
	key := likeKey(data)

	if f.insertDuplicate {
		f.insertDuplicate = false
		other := data
		other.ID = primitive.NewObjectID()
		f.docs[key] = other
		return likemodels.Like{}, common.ErrMongoDuplicate
	}

	if _, exists := f.docs[key]; exists {
		return likemodels.Like{}, common.ErrMongoDuplicate
	}
	f.docs[key] = data
	return data, nil
}

func (f *fakeLikeStore) FindOne(_ context.Context, filter interface{}, _ *options.FindOneOptions) (likemodels.Like, error) {
	if doc, exists := f.docs[filterKey(filter.(bson.M))]; exists {
		return doc, nil
	}
	return likemodels.Like{}, common.ErrNotFound
}

func (f *fakeLikeStore) FindOneAndDelete(_ context.Context, filter interface{}, _ *options.FindOneAndDeleteOptions) (likemodels.Like, error) {
	key := filterKey(filter.(bson.M))
	doc, exists := f.docs[key]
	if !exists {
		return likemodels.Like{}, common.ErrNotFound
	}
	delete(f.docs, key)
	return doc, nil
}

func TestLikeToggle_DaoTrangThaiLuanPhien(t *testing.T) {
	ctx := context.Background()
	target := primitive.NewObjectID()
	actor := primitive.NewObjectID()

	store := newFakeLikeStore()
	svc := &LikeService{BaseServiceMongo: store}

	// Toggle lần 1: tạo like
	result, err := svc.Toggle(ctx, likemodels.TargetVideo, target, actor)
	require.NoError(t, err)
	assert.True(t, result.Liked)
	require.NotNil(t, result.Like)
	assert.Equal(t, target, *result.Like.Video)
	assert.Len(t, store.docs, 1)

	// Toggle lần 2: gỡ like
	result, err = svc.Toggle(ctx, likemodels.TargetVideo, target, actor)
	require.NoError(t, err)
	assert.False(t, result.Liked)
	assert.Nil(t, result.Like)
	assert.Empty(t, store.docs)

	// Toggle lần 3: tạo lại, luân phiên không để lại trạng thái thừa
	result, err = svc.Toggle(ctx, likemodels.TargetVideo, target, actor)
	require.NoError(t, err)
	assert.True(t, result.Liked)
	assert.Len(t, store.docs, 1)
}

func TestLikeToggle_RaceChenTrung(t *testing.T) {
	ctx := context.Background()
	target := primitive.NewObjectID()
	actor := primitive.NewObjectID()

	store := newFakeLikeStore()
	store.insertDuplicate = true
	svc := &LikeService{BaseServiceMongo: store}

	// Toggle khác vừa chèn trước: kết quả vẫn là đã like, trả về bản ghi hiện có
	result, err := svc.Toggle(ctx, likemodels.TargetVideo, target, actor)
	require.NoError(t, err)
	assert.True(t, result.Liked)
	require.NotNil(t, result.Like)
	assert.Equal(t, target, *result.Like.Video)
	assert.Len(t, store.docs, 1)
}
