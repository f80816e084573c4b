// Package subscriptionhdl chứa HTTP handler cho domain Subscription.
package subscriptionhdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "video_tube/internal/api/base/handler"
	subscriptionmodels "video_tube/internal/api/subscription/models"
	subscriptionsvc "video_tube/internal/api/subscription/service"
)

// SubscriptionHandler xử lý các request liên quan đến Subscription
type SubscriptionHandler struct {
	basehdl.BaseHandler[subscriptionmodels.Subscription, interface{}]
	service *subscriptionsvc.SubscriptionService
}

// NewSubscriptionHandler tạo mới SubscriptionHandler
func NewSubscriptionHandler(service *subscriptionsvc.SubscriptionService) *SubscriptionHandler {
	baseHandler := basehdl.NewBaseHandler[subscriptionmodels.Subscription, interface{}](service)
	return &SubscriptionHandler{
		BaseHandler: *baseHandler,
		service:     service,
	}
}

// Toggle đảo trạng thái đăng ký kênh của actor
func (h *SubscriptionHandler) Toggle(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		actorID, err := h.ActorID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		channelID, err := h.ParseObjectIDParam(c, "channelId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.service.Toggle(c.Context(), actorID, channelID)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// ListSubscribers liệt kê người đăng ký của một kênh
func (h *SubscriptionHandler) ListSubscribers(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		channelID, err := h.ParseObjectIDParam(c, "channelId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.service.ListSubscribers(c.Context(), channelID)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// ListSubscribedChannels liệt kê các kênh một user đã đăng ký
func (h *SubscriptionHandler) ListSubscribedChannels(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		subscriberID, err := h.ParseObjectIDParam(c, "subscriberId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.service.ListSubscribedChannels(c.Context(), subscriberID)
		h.HandleResponse(c, data, err)
		return nil
	})
}
