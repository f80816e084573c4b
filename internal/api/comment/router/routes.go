// Package router đăng ký các route thuộc domain Comment: danh sách và tạo bình luận theo video, cập nhật, xóa.
package router

import (
	"github.com/gofiber/fiber/v3"

	commenthdl "video_tube/internal/api/comment/handler"
	apirouter "video_tube/internal/api/router"
)

// Register trả về hàm đăng ký route cho domain Comment.
// Route đọc/tạo nằm dưới video, route sửa/xóa theo ID comment.
func Register(h *commenthdl.CommentHandler, authMW fiber.Handler) apirouter.RegisterFunc {
	return func(v1 fiber.Router, r *apirouter.Router) error {
		apirouter.RegisterGroupWithMiddleware(v1, "/videos/:videoId/comments", []fiber.Handler{authMW}, func(g fiber.Router) {
			g.Get("/", h.ListByVideo)
			g.Post("/", h.Create)
		})

		apirouter.RegisterGroupWithMiddleware(v1, "/comments", []fiber.Handler{authMW}, func(g fiber.Router) {
			g.Patch("/:id", h.Update)
			g.Delete("/:id", h.Delete)
		})
		return nil
	}
}
