// Package router đăng ký các route thuộc domain Subscription: bật tắt đăng ký kênh và danh sách subscriber, kênh đã đăng ký.
package router

import (
	"github.com/gofiber/fiber/v3"

	apirouter "video_tube/internal/api/router"
	subscriptionhdl "video_tube/internal/api/subscription/handler"
)

// Register trả về hàm đăng ký route cho domain Subscription
func Register(h *subscriptionhdl.SubscriptionHandler, authMW fiber.Handler) apirouter.RegisterFunc {
	return func(v1 fiber.Router, r *apirouter.Router) error {
		apirouter.RegisterGroupWithMiddleware(v1, "/subscriptions", []fiber.Handler{authMW}, func(g fiber.Router) {
			g.Post("/toggle/:channelId", h.Toggle)
			g.Get("/channel/:channelId/subscribers", h.ListSubscribers)
			g.Get("/user/:subscriberId/channels", h.ListSubscribedChannels)
		})
		return nil
	}
}
