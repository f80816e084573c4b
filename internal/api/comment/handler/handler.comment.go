// Package commenthdl chứa HTTP handler cho domain Comment.
package commenthdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "video_tube/internal/api/base/handler"
	commentdto "video_tube/internal/api/comment/dto"
	commentmodels "video_tube/internal/api/comment/models"
	commentsvc "video_tube/internal/api/comment/service"
)

// CommentHandler xử lý các request liên quan đến Comment
type CommentHandler struct {
	basehdl.BaseHandler[commentmodels.Comment, commentdto.CommentCreateInput]
	service *commentsvc.CommentService
}

// NewCommentHandler tạo mới CommentHandler
func NewCommentHandler(service *commentsvc.CommentService) *CommentHandler {
	baseHandler := basehdl.NewBaseHandler[commentmodels.Comment, commentdto.CommentCreateInput](service)
	return &CommentHandler{
		BaseHandler: *baseHandler,
		service:     service,
	}
}

// ListByVideo liệt kê bình luận của một video (phân trang, mới nhất trước)
func (h *CommentHandler) ListByVideo(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		videoID, err := h.ParseObjectIDParam(c, "videoId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		page, limit := h.ParsePagination(c)
		data, err := h.service.ListByVideo(c.Context(), videoID, page, limit)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// Create thêm bình luận vào một video
func (h *CommentHandler) Create(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		actorID, err := h.ActorID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		videoID, err := h.ParseObjectIDParam(c, "videoId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		input := new(commentdto.CommentCreateInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.service.Create(c.Context(), videoID, actorID, input.Content)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// Update sửa nội dung một bình luận của chính actor
func (h *CommentHandler) Update(c fiber.Ctx) error {
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

		input := new(commentdto.CommentUpdateInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.service.UpdateOwned(c.Context(), id, actorID, input.Content)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// Delete xóa một bình luận của chính actor
func (h *CommentHandler) Delete(c fiber.Ctx) error {
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
