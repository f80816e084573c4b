package basehdl

// Base CRUD handlers.
// Handler dùng chung cho thao tác tạo mới chuẩn: parse body → validate →
// convert DTO sang model → gọi service. Domain handler chỉ cần gán
// ConvertCreate và đăng ký route; các thao tác đọc/sửa/xóa đều có
// ownership guard riêng nên nằm ở domain handler.

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"video_tube/internal/common"
)

// InsertOne thêm mới một document vào database.
// Dữ liệu được parse từ request body (DTO CreateInput), validate và convert
// sang Model trước khi thêm vào DB. Owner của document là user đang đăng nhập.
func (h *BaseHandler[T, CreateInput]) InsertOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		actorID, err := h.ActorID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input CreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		if h.ConvertCreate == nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeInternalServer,
				"Handler chưa được cấu hình hàm convert cho thao tác tạo mới",
				common.StatusInternalServerError,
				nil,
			))
			return nil
		}

		model, err := h.ConvertCreate(actorID, &input)
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Lỗi chuyển đổi dữ liệu: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		data, err := h.BaseService.InsertOne(c.Context(), model)
		h.HandleResponse(c, data, err)
		return nil
	})
}
