// Package playlistsvc - Test nghiệp vụ membership của playlist trên store giả lập.
package playlistsvc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "video_tube/internal/api/base/service"
	playlistmodels "video_tube/internal/api/playlist/models"
	"video_tube/internal/common"
)

// fakePlaylistStore giả lập store playlist trong bộ nhớ cho một document duy nhất.
// Diễn giải đúng các filter mà PlaylistService dùng: _id, owner và membership
// guard trên trường videos ($ne khi thêm, giá trị trực tiếp khi gỡ).
type fakePlaylistStore struct {
	basesvc.BaseServiceMongo[playlistmodels.Playlist]

	doc *playlistmodels.Playlist
}

func (f *fakePlaylistStore) contains(v primitive.ObjectID) bool {
	for _, id := range f.doc.Videos {
		if id == v {
			return true
		}
	}
	return false
}

func (f *fakePlaylistStore) matches(filter bson.M) bool {
	if f.doc == nil {
		return false
	}
	if id, ok := filter["_id"].(primitive.ObjectID); ok && id != f.doc.ID {
		return false
	}
	if owner, ok := filter["owner"].(primitive.ObjectID); ok && owner != f.doc.Owner {
		return false
	}
	if guard, ok := filter["videos"]; ok {
		switch g := guard.(type) {
		case primitive.ObjectID:
			// Gỡ video: chỉ match khi video đang nằm trong playlist
			if !f.contains(g) {
				return false
			}
		case bson.M:
			// Thêm video: guard $ne chỉ match khi video chưa có trong playlist
			if ne, ok := g["$ne"].(primitive.ObjectID); ok && f.contains(ne) {
				return false
			}
		}
	}
	return true
}

func (f *fakePlaylistStore) InsertOne(_ context.Context, data playlistmodels.Playlist) (playlistmodels.Playlist, error) {
	data.ID = primitive.NewObjectID()
	f.doc = &data
	return data, nil
}

func (f *fakePlaylistStore) FindOneAndUpdate(_ context.Context, filter interface{}, update interface{}, _ *options.FindOneAndUpdateOptions) (playlistmodels.Playlist, error) {
	if !f.matches(filter.(bson.M)) {
		return playlistmodels.Playlist{}, common.ErrNotFound
	}

	data := update.(*basesvc.UpdateData)
	if v, ok := data.Push["videos"].(primitive.ObjectID); ok {
		f.doc.Videos = append(f.doc.Videos, v)
	}
	if v, ok := data.Pull["videos"].(primitive.ObjectID); ok {
		kept := f.doc.Videos[:0]
		for _, id := range f.doc.Videos {
			if id != v {
				kept = append(kept, id)
			}
		}
		f.doc.Videos = kept
	}

	return *f.doc, nil
}

func (f *fakePlaylistStore) DocumentExists(_ context.Context, filter interface{}) (bool, error) {
	return f.matches(filter.(bson.M)), nil
}

// fakeVideoProbe giả lập collection videos, chỉ trả lời câu hỏi video có tồn tại không
type fakeVideoProbe struct {
	basesvc.BaseServiceMongo[bson.M]

	exists bool
}

func (f *fakeVideoProbe) DocumentExists(context.Context, interface{}) (bool, error) {
	return f.exists, nil
}

func TestPlaylistMembership(t *testing.T) {
	ctx := context.Background()
	owner := primitive.NewObjectID()
	video := primitive.NewObjectID()

	svc := &PlaylistService{
		BaseServiceMongo: &fakePlaylistStore{},
		videos:           &fakeVideoProbe{exists: true},
	}

	created, err := svc.Create(ctx, owner, "Học Go", "Danh sách bài giảng")
	require.NoError(t, err)
	require.Empty(t, created.Videos)

	// Thêm lần đầu thành công
	updated, err := svc.AddVideo(ctx, created.ID, video, owner)
	require.NoError(t, err)
	assert.Equal(t, []primitive.ObjectID{video}, updated.Videos)

	// Thêm lần hai cùng video là lỗi trùng, playlist không đổi
	_, err = svc.AddVideo(ctx, created.ID, video, owner)
	assert.ErrorIs(t, err, ErrDuplicateMember)

	// Gỡ thành công
	updated, err = svc.RemoveVideo(ctx, created.ID, video, owner)
	require.NoError(t, err)
	assert.Empty(t, updated.Videos)

	// Gỡ lần hai: video không còn trong playlist
	_, err = svc.RemoveVideo(ctx, created.ID, video, owner)
	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestPlaylistMembership_PlaylistKhongTonTai(t *testing.T) {
	ctx := context.Background()
	owner := primitive.NewObjectID()
	video := primitive.NewObjectID()

	svc := &PlaylistService{
		BaseServiceMongo: &fakePlaylistStore{},
		videos:           &fakeVideoProbe{exists: true},
	}

	_, err := svc.AddVideo(ctx, primitive.NewObjectID(), video, owner)
	assert.ErrorIs(t, err, common.ErrNotFound)

	_, err = svc.RemoveVideo(ctx, primitive.NewObjectID(), video, owner)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestPlaylistMembership_KhongPhaiChuSoHuu(t *testing.T) {
	ctx := context.Background()
	owner := primitive.NewObjectID()
	stranger := primitive.NewObjectID()
	video := primitive.NewObjectID()

	svc := &PlaylistService{
		BaseServiceMongo: &fakePlaylistStore{},
		videos:           &fakeVideoProbe{exists: true},
	}

	created, err := svc.Create(ctx, owner, "Riêng tư", "Chỉ của tôi")
	require.NoError(t, err)

	// Người khác thêm video vào playlist không phải của mình: như không tồn tại
	_, err = svc.AddVideo(ctx, created.ID, video, stranger)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestPlaylistAddVideo_VideoKhongTonTai(t *testing.T) {
	ctx := context.Background()
	owner := primitive.NewObjectID()

	svc := &PlaylistService{
		BaseServiceMongo: &fakePlaylistStore{},
		videos:           &fakeVideoProbe{exists: false},
	}

	created, err := svc.Create(ctx, owner, "Trống", "Chưa có gì")
	require.NoError(t, err)

	_, err = svc.AddVideo(ctx, created.ID, primitive.NewObjectID(), owner)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

// Aggregate giả lập pipeline không có kết quả: không ghi gì vào results
func (f *fakePlaylistStore) Aggregate(context.Context, interface{}, interface{}) error {
	return nil
}

func TestPlaylistListByOwner_KhongCoPlaylist(t *testing.T) {
	ctx := context.Background()
	svc := &PlaylistService{
		BaseServiceMongo: &fakePlaylistStore{},
		videos:           &fakeVideoProbe{exists: true},
	}

	_, err := svc.ListByOwner(ctx, primitive.NewObjectID())
	assert.ErrorIs(t, err, common.ErrNotFound)
}
