// Package subscriptiondto chứa DTO cho domain Subscription.
package subscriptiondto

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	subscriptionmodels "video_tube/internal/api/subscription/models"
	usermodels "video_tube/internal/api/user/models"
)

// ToggleResult là kết quả của một lần toggle subscription.
// Subscribed = true kèm subscription vừa tạo; Subscribed = false nghĩa là đã hủy đăng ký.
type ToggleResult struct {
	Subscribed   bool                             `json:"subscribed"`             // Trạng thái sau toggle
	Subscription *subscriptionmodels.Subscription `json:"subscription,omitempty"` // Bản ghi vừa tạo (chỉ khi Subscribed = true)
}

// SubscriberEntry là một người đăng ký của kênh (kết quả $lookup)
type SubscriberEntry struct {
	SubscriptionID primitive.ObjectID `json:"subscriptionId" bson:"_id"`
	SubscribedAt   int64              `json:"subscribedAt" bson:"createdAt"` // Thời điểm đăng ký (unix milli)
	Subscriber     usermodels.Profile `json:"subscriber" bson:"subscriberProfile"`
}

// ChannelEntry là một kênh mà user đã đăng ký (kết quả $lookup)
type ChannelEntry struct {
	SubscriptionID primitive.ObjectID `json:"subscriptionId" bson:"_id"`
	SubscribedAt   int64              `json:"subscribedAt" bson:"createdAt"` // Thời điểm đăng ký (unix milli)
	Channel        usermodels.Profile `json:"channel" bson:"channelProfile"`
}
