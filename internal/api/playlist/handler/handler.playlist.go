// Package playlisthdl chứa HTTP handler cho domain Playlist.
package playlisthdl

import (
	"context"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "video_tube/internal/api/base/handler"
	playlistdto "video_tube/internal/api/playlist/dto"
	playlistmodels "video_tube/internal/api/playlist/models"
	playlistsvc "video_tube/internal/api/playlist/service"
	"video_tube/internal/common"
)

// PlaylistHandler xử lý các request liên quan đến Playlist
type PlaylistHandler struct {
	basehdl.BaseHandler[playlistmodels.Playlist, playlistdto.PlaylistCreateInput]
	service *playlistsvc.PlaylistService
}

// NewPlaylistHandler tạo mới PlaylistHandler
func NewPlaylistHandler(service *playlistsvc.PlaylistService) *PlaylistHandler {
	baseHandler := basehdl.NewBaseHandler[playlistmodels.Playlist, playlistdto.PlaylistCreateInput](service)
	return &PlaylistHandler{
		BaseHandler: *baseHandler,
		service:     service,
	}
}

// Create tạo playlist mới
func (h *PlaylistHandler) Create(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		actorID, err := h.ActorID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		input := new(playlistdto.PlaylistCreateInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.service.Create(c.Context(), actorID, input.Name, input.Description)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// GetById lấy một playlist kèm document các video trong đó
func (h *PlaylistHandler) GetById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.service.GetByIdWithVideos(c.Context(), id)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// ListByUser liệt kê playlist của một user
func (h *PlaylistHandler) ListByUser(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		ownerID, err := h.ParseObjectIDParam(c, "userId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.service.ListByOwner(c.Context(), ownerID)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// Update cập nhật partial name/description của một playlist của chính actor
func (h *PlaylistHandler) Update(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		actorID, err := h.ActorID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		id, err := h.ParseObjectIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		input := new(playlistdto.PlaylistUpdateInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		set := playlistdto.BuildPlaylistSet(input)
		if len(set) == 0 {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"Phải có ít nhất một trường cần cập nhật (name hoặc description)",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		data, err := h.service.UpdateOwned(c.Context(), id, actorID, set)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// Delete xóa một playlist của chính actor
func (h *PlaylistHandler) Delete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		actorID, err := h.ActorID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		id, err := h.ParseObjectIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.service.DeleteOwned(c.Context(), id, actorID)
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// AddVideo thêm một video vào playlist của chính actor
func (h *PlaylistHandler) AddVideo(c fiber.Ctx) error {
	return h.membershipEdit(c, h.service.AddVideo)
}

// RemoveVideo gỡ một video khỏi playlist của chính actor
func (h *PlaylistHandler) RemoveVideo(c fiber.Ctx) error {
	return h.membershipEdit(c, h.service.RemoveVideo)
}

// membershipEdit parse chung cặp (playlistId, videoId) rồi gọi thao tác membership
func (h *PlaylistHandler) membershipEdit(c fiber.Ctx, edit func(ctx context.Context, playlistID, videoID, actor primitive.ObjectID) (playlistmodels.Playlist, error)) error {
	return h.SafeHandler(c, func() error {
		actorID, err := h.ActorID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		playlistID, err := h.ParseObjectIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		videoID, err := h.ParseObjectIDParam(c, "videoId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := edit(c.Context(), playlistID, videoID, actorID)
		h.HandleResponse(c, data, err)
		return nil
	})
}
