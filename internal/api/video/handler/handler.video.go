// Package videohdl chứa HTTP handler cho domain Video.
// File: handler.video.go - giữ tên cấu trúc cũ (handler.<domain>.go).
package videohdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "video_tube/internal/api/base/handler"
	videodto "video_tube/internal/api/video/dto"
	videomodels "video_tube/internal/api/video/models"
	videosvc "video_tube/internal/api/video/service"
	"video_tube/internal/common"
	"video_tube/internal/media"
)

// VideoHandler xử lý các request liên quan đến Video
type VideoHandler struct {
	basehdl.BaseHandler[videomodels.Video, videodto.VideoCreateInput]
	service *videosvc.VideoService
}

// NewVideoHandler tạo mới VideoHandler
func NewVideoHandler(service *videosvc.VideoService) *VideoHandler {
	baseHandler := basehdl.NewBaseHandler[videomodels.Video, videodto.VideoCreateInput](service)
	return &VideoHandler{
		BaseHandler: *baseHandler,
		service:     service,
	}
}

// List liệt kê video với filter, sort và phân trang.
// Query params: query, ownerId, sortBy, sortType, page, limit.
func (h *VideoHandler) List(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		page, limit := h.ParsePagination(c)
		q := &videodto.VideoListQuery{
			Query:    c.Query("query"),
			OwnerID:  c.Query("ownerId"),
			SortBy:   c.Query("sortBy"),
			SortType: c.Query("sortType"),
			Page:     page,
			Limit:    limit,
		}

		if err := h.ValidateInput(q); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.service.List(c.Context(), q)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// Publish upload video + thumbnail lên media store rồi tạo document video.
// Body là multipart form: videoFile, thumbnail, title, description, duration (tùy chọn).
func (h *VideoHandler) Publish(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		actorID, err := h.ActorID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		input := videodto.VideoCreateInput{
			Title:       c.FormValue("title"),
			Description: c.FormValue("description"),
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		videoFile, err := c.FormFile("videoFile")
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"Thiếu file video trong multipart form (field 'videoFile')",
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		thumbFile, err := c.FormFile("thumbnail")
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"Thiếu file thumbnail trong multipart form (field 'thumbnail')",
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		// Media store không đọc metadata của file, client gửi kèm thời lượng
		duration, err := videodto.ParseDuration(c.FormValue("duration"))
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		// Upload cả hai asset trước khi persist
		videoAsset, err := h.service.Store().Upload(c.Context(), videoFile)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		thumbAsset, err := h.service.Store().Upload(c.Context(), thumbFile)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		video := videomodels.Video{
			VideoFile:   *videoAsset,
			Thumbnail:   *thumbAsset,
			Title:       input.Title,
			Description: input.Description,
			Duration:    duration,
			IsPublished: true,
			Owner:       actorID,
		}

		data, err := h.service.Publish(c.Context(), video)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// GetById lấy một video theo ID kèm profile chủ sở hữu
func (h *VideoHandler) GetById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.service.GetByIdWithOwner(c.Context(), id)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// Update cập nhật partial một video (title/description, kèm thumbnail mới nếu có).
// Body là multipart form; thumbnail mới upload xong mới xóa thumbnail cũ.
func (h *VideoHandler) Update(c fiber.Ctx) error {
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

		set := videodto.BuildVideoSet(c.FormValue("title"), c.FormValue("description"))

		thumbFile, thumbErr := c.FormFile("thumbnail")
		if len(set) == 0 && thumbErr != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"Phải có ít nhất một trường cần cập nhật (title, description hoặc thumbnail)",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		if thumbErr == nil {
			// Upload thumbnail mới trước, persist xong mới xóa cái cũ
			var newThumb *media.Asset
			newThumb, err = h.service.Store().Upload(c.Context(), thumbFile)
			if err != nil {
				h.HandleResponse(c, nil, err)
				return nil
			}

			data, err := h.service.ReplaceThumbnail(c.Context(), id, actorID, set, newThumb)
			h.HandleResponse(c, data, err)
			return nil
		}

		data, err := h.service.UpdateOwned(c.Context(), id, actorID, set)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// Delete xóa cứng một video kèm cả hai asset trên media store
func (h *VideoHandler) Delete(c fiber.Ctx) error {
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

// TogglePublish đảo trạng thái hiển thị công khai của một video
func (h *VideoHandler) TogglePublish(c fiber.Ctx) error {
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

		data, err := h.service.TogglePublish(c.Context(), id, actorID)
		h.HandleResponse(c, data, err)
		return nil
	})
}
