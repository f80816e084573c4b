// Package playlistdto - Test partial update playlist.
package playlistdto

import "testing"

func strPtr(s string) *string { return &s }

func TestBuildPlaylistSet(t *testing.T) {
	set := BuildPlaylistSet(&PlaylistUpdateInput{})
	if len(set) != 0 {
		t.Errorf("input rỗng phải cho set rỗng, nhận %v", set)
	}

	// Chỉ name: description không được đụng tới
	set = BuildPlaylistSet(&PlaylistUpdateInput{Name: strPtr("Favorites")})
	if len(set) != 1 || set["name"] != "Favorites" {
		t.Errorf("chỉ name được set, nhận %v", set)
	}

	// Chuỗi rỗng tường minh vẫn là một giá trị cập nhật hợp lệ
	set = BuildPlaylistSet(&PlaylistUpdateInput{Description: strPtr("")})
	if v, ok := set["description"]; !ok || v != "" {
		t.Errorf("description rỗng tường minh phải được set, nhận %v", set)
	}
}
