// Package router đăng ký các route thuộc domain Like: bật tắt like cho video, comment, tweet và danh sách video đã like.
package router

import (
	"github.com/gofiber/fiber/v3"

	likehdl "video_tube/internal/api/like/handler"
	apirouter "video_tube/internal/api/router"
)

// Register trả về hàm đăng ký route cho domain Like
func Register(h *likehdl.LikeHandler, authMW fiber.Handler) apirouter.RegisterFunc {
	return func(v1 fiber.Router, r *apirouter.Router) error {
		apirouter.RegisterGroupWithMiddleware(v1, "/likes", []fiber.Handler{authMW}, func(g fiber.Router) {
			g.Post("/toggle/video/:id", h.ToggleVideo)
			g.Post("/toggle/comment/:id", h.ToggleComment)
			g.Post("/toggle/tweet/:id", h.ToggleTweet)
			g.Get("/videos", h.GetLikedVideos)
		})
		return nil
	}
}
