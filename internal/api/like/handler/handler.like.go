// Package likehdl chứa HTTP handler cho domain Like.
package likehdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "video_tube/internal/api/base/handler"
	likemodels "video_tube/internal/api/like/models"
	likesvc "video_tube/internal/api/like/service"
	"video_tube/internal/common"
)

// LikeHandler xử lý các request liên quan đến Like
type LikeHandler struct {
	basehdl.BaseHandler[likemodels.Like, interface{}]
	service *likesvc.LikeService
}

// NewLikeHandler tạo mới LikeHandler
func NewLikeHandler(service *likesvc.LikeService) *LikeHandler {
	baseHandler := basehdl.NewBaseHandler[likemodels.Like, interface{}](service)
	return &LikeHandler{
		BaseHandler: *baseHandler,
		service:     service,
	}
}

// toggle đọc target kind từ route rồi gọi service toggle
func (h *LikeHandler) toggle(c fiber.Ctx, kind likemodels.TargetKind) error {
	return h.SafeHandler(c, func() error {
		actorID, err := h.ActorID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		targetID, err := h.ParseObjectIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		if !kind.Valid() {
			h.HandleResponse(c, nil, common.ErrInvalidInput)
			return nil
		}

		data, err := h.service.Toggle(c.Context(), kind, targetID, actorID)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// ToggleVideo đảo trạng thái like một video
func (h *LikeHandler) ToggleVideo(c fiber.Ctx) error {
	return h.toggle(c, likemodels.TargetVideo)
}

// ToggleComment đảo trạng thái like một comment
func (h *LikeHandler) ToggleComment(c fiber.Ctx) error {
	return h.toggle(c, likemodels.TargetComment)
}

// ToggleTweet đảo trạng thái like một tweet
func (h *LikeHandler) ToggleTweet(c fiber.Ctx) error {
	return h.toggle(c, likemodels.TargetTweet)
}

// GetLikedVideos liệt kê các video actor đã thích
func (h *LikeHandler) GetLikedVideos(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		actorID, err := h.ActorID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.service.GetLikedVideos(c.Context(), actorID)
		h.HandleResponse(c, data, err)
		return nil
	})
}
