// Package tweethdl chứa HTTP handler cho domain Tweet.
package tweethdl

import (
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "video_tube/internal/api/base/handler"
	tweetdto "video_tube/internal/api/tweet/dto"
	tweetmodels "video_tube/internal/api/tweet/models"
	tweetsvc "video_tube/internal/api/tweet/service"
)

// TweetHandler xử lý các request liên quan đến Tweet.
// Create dùng flow generic của BaseHandler qua ConvertCreate.
type TweetHandler struct {
	basehdl.BaseHandler[tweetmodels.Tweet, tweetdto.TweetCreateInput]
	service *tweetsvc.TweetService
}

// NewTweetHandler tạo mới TweetHandler
func NewTweetHandler(service *tweetsvc.TweetService) *TweetHandler {
	baseHandler := basehdl.NewBaseHandler[tweetmodels.Tweet, tweetdto.TweetCreateInput](service)
	baseHandler.ConvertCreate = func(actorID primitive.ObjectID, input *tweetdto.TweetCreateInput) (tweetmodels.Tweet, error) {
		return tweetmodels.Tweet{
			Content: input.Content,
			Owner:   actorID,
		}, nil
	}

	return &TweetHandler{
		BaseHandler: *baseHandler,
		service:     service,
	}
}

// Create đăng tweet mới (dùng flow InsertOne generic của base handler)
func (h *TweetHandler) Create(c fiber.Ctx) error {
	return h.InsertOne(c)
}

// ListByUser liệt kê tweet của một user
func (h *TweetHandler) ListByUser(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		ownerID, err := h.ParseObjectIDParam(c, "userId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.service.ListByOwner(c.Context(), ownerID)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// Update sửa nội dung một tweet của chính actor
func (h *TweetHandler) Update(c fiber.Ctx) error {
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

		input := new(tweetdto.TweetUpdateInput)
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

// Delete xóa một tweet của chính actor
func (h *TweetHandler) Delete(c fiber.Ctx) error {
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
