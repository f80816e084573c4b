// Package router đăng ký các route thuộc domain Playlist: CRUD playlist và thêm, gỡ video khỏi playlist.
package router

import (
	"github.com/gofiber/fiber/v3"

	playlisthdl "video_tube/internal/api/playlist/handler"
	apirouter "video_tube/internal/api/router"
)

// Register trả về hàm đăng ký route cho domain Playlist
func Register(h *playlisthdl.PlaylistHandler, authMW fiber.Handler) apirouter.RegisterFunc {
	return func(v1 fiber.Router, r *apirouter.Router) error {
		apirouter.RegisterGroupWithMiddleware(v1, "/playlists", []fiber.Handler{authMW}, func(g fiber.Router) {
			g.Post("/", h.Create)
			g.Get("/:id", h.GetById)
			g.Get("/user/:userId", h.ListByUser)
			g.Patch("/:id", h.Update)
			g.Delete("/:id", h.Delete)
			g.Patch("/:id/videos/:videoId", h.AddVideo)
			g.Delete("/:id/videos/:videoId", h.RemoveVideo)
		})
		return nil
	}
}
