// Package playlistdto chứa DTO cho domain Playlist.
package playlistdto

import (
	playlistmodels "video_tube/internal/api/playlist/models"
	videomodels "video_tube/internal/api/video/models"
)

// PlaylistCreateInput là input khi tạo playlist mới
type PlaylistCreateInput struct {
	Name        string `json:"name" validate:"required"`        // Tên playlist
	Description string `json:"description" validate:"required"` // Mô tả
}

// PlaylistUpdateInput là input khi cập nhật playlist (partial update)
type PlaylistUpdateInput struct {
	Name        *string `json:"name,omitempty"`        // Tên mới
	Description *string `json:"description,omitempty"` // Mô tả mới
}

// BuildPlaylistSet gom các trường cần cập nhật thành map $set.
// Trường nil coi như không thay đổi.
func BuildPlaylistSet(input *PlaylistUpdateInput) map[string]interface{} {
	set := map[string]interface{}{}
	if input.Name != nil {
		set["name"] = *input.Name
	}
	if input.Description != nil {
		set["description"] = *input.Description
	}
	return set
}

// PlaylistWithVideos là playlist kèm document đầy đủ của các video (kết quả $lookup)
type PlaylistWithVideos struct {
	playlistmodels.Playlist `bson:",inline"`
	VideoDocs               []videomodels.Video `json:"videoDocs" bson:"videoDocs"`
}
