// Package router đăng ký các route thuộc domain Video: danh sách, đăng tải, chi tiết, cập nhật, xóa, bật tắt trạng thái công khai.
package router

import (
	"github.com/gofiber/fiber/v3"

	apirouter "video_tube/internal/api/router"
	videohdl "video_tube/internal/api/video/handler"
)

// Register trả về hàm đăng ký route cho domain Video.
// Tất cả route đều yêu cầu JWT hợp lệ.
func Register(h *videohdl.VideoHandler, authMW fiber.Handler) apirouter.RegisterFunc {
	return func(v1 fiber.Router, r *apirouter.Router) error {
		apirouter.RegisterGroupWithMiddleware(v1, "/videos", []fiber.Handler{authMW}, func(g fiber.Router) {
			g.Get("/", h.List)
			g.Post("/", h.Publish)
			g.Get("/:id", h.GetById)
			g.Patch("/:id", h.Update)
			g.Delete("/:id", h.Delete)
			g.Patch("/:id/toggle-publish", h.TogglePublish)
		})
		return nil
	}
}
