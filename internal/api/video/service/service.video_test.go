// Package videosvc - Test dựng filter và sort cho listing video.
package videosvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	videodto "video_tube/internal/api/video/dto"
)

func TestBuildListFilter_Rong(t *testing.T) {
	filter := BuildListFilter(&videodto.VideoListQuery{})
	assert.Empty(t, filter, "query rỗng phải cho filter rỗng (match tất cả)")
}

func TestBuildListFilter_TimKiemTheoTitle(t *testing.T) {
	filter := BuildListFilter(&videodto.VideoListQuery{Query: "golang"})

	title, ok := filter["title"].(bson.M)
	require.True(t, ok, "filter title phải là bson.M")
	assert.Equal(t, "golang", title["$regex"])
	assert.Equal(t, "i", title["$options"], "tìm kiếm phải không phân biệt hoa thường")
}

func TestBuildListFilter_EscapeKyTuRegex(t *testing.T) {
	// Chuỗi tìm kiếm chứa ký tự đặc biệt của regex phải được escape,
	// user không thể inject pattern vào query
	filter := BuildListFilter(&videodto.VideoListQuery{Query: "c++ (phần 1)"})

	title := filter["title"].(bson.M)
	assert.Equal(t, `c\+\+ \(phần 1\)`, title["$regex"])
}

func TestBuildListFilter_LocTheoOwner(t *testing.T) {
	owner := primitive.NewObjectID()
	filter := BuildListFilter(&videodto.VideoListQuery{OwnerID: owner.Hex()})

	assert.Equal(t, owner, filter["owner"])
	_, hasTitle := filter["title"]
	assert.False(t, hasTitle)
}

func TestBuildListSort_MacDinh(t *testing.T) {
	sort := BuildListSort("", "")
	require.Len(t, sort, 1)
	assert.Equal(t, "createdAt", sort[0].Key)
	assert.Equal(t, -1, sort[0].Value, "mặc định phải là mới nhất trước")
}

func TestBuildListSort_TangDan(t *testing.T) {
	sort := BuildListSort("views", "asc")
	require.Len(t, sort, 1)
	assert.Equal(t, "views", sort[0].Key)
	assert.Equal(t, 1, sort[0].Value)
}

func TestBuildListSort_SortTypeLaChiKhongPhaiAsc(t *testing.T) {
	// Bất kỳ giá trị nào khác "asc" đều coi là giảm dần
	sort := BuildListSort("views", "desc")
	assert.Equal(t, -1, sort[0].Value)

	sort = BuildListSort("views", "xyz")
	assert.Equal(t, -1, sort[0].Value)
}
