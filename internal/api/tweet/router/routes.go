// Package router đăng ký các route thuộc domain Tweet: tạo, danh sách theo người dùng, cập nhật, xóa.
package router

import (
	"github.com/gofiber/fiber/v3"

	apirouter "video_tube/internal/api/router"
	tweethdl "video_tube/internal/api/tweet/handler"
)

// Register trả về hàm đăng ký route cho domain Tweet
func Register(h *tweethdl.TweetHandler, authMW fiber.Handler) apirouter.RegisterFunc {
	return func(v1 fiber.Router, r *apirouter.Router) error {
		apirouter.RegisterGroupWithMiddleware(v1, "/tweets", []fiber.Handler{authMW}, func(g fiber.Router) {
			g.Post("/", h.Create)
			g.Get("/user/:userId", h.ListByUser)
			g.Patch("/:id", h.Update)
			g.Delete("/:id", h.Delete)
		})
		return nil
	}
}
