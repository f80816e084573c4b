// Package subscriptionsvc chứa service data access cho domain Subscription.
// File: service.subscription.go - giữ tên cấu trúc cũ (service.<domain>.go).
package subscriptionsvc

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	basesvc "video_tube/internal/api/base/service"
	subscriptiondto "video_tube/internal/api/subscription/dto"
	subscriptionmodels "video_tube/internal/api/subscription/models"
	"video_tube/internal/common"
	"video_tube/internal/global"
	"video_tube/internal/registry"
)

// SubscriptionService là service quản lý lượt đăng ký kênh
type SubscriptionService struct {
	basesvc.BaseServiceMongo[subscriptionmodels.Subscription]
}

// NewSubscriptionService tạo mới SubscriptionService
func NewSubscriptionService(collections *registry.Registry[*mongo.Collection]) (*SubscriptionService, error) {
	collection, exist := collections.Get(global.MongoDB_ColNames.Subscriptions)
	if !exist {
		return nil, fmt.Errorf("failed to get subscriptions collection: %v", common.ErrNotFound)
	}

	return &SubscriptionService{
		BaseServiceMongo: basesvc.NewBaseServiceMongo[subscriptionmodels.Subscription](collection),
	}, nil
}

// BuildToggleFilter dựng filter xác định duy nhất một subscription theo (subscriber, channel).
// Hàm thuần để test không cần database.
func BuildToggleFilter(subscriber, channel primitive.ObjectID) bson.M {
	return bson.M{
		"subscriber": subscriber,
		"channel":    channel,
	}
}

// Toggle đảo trạng thái đăng ký kênh của actor.
// Cùng pattern với toggle like: xóa-nếu-có rồi tạo-nếu-chưa, race được chặn
// bởi unique index (subscriber, channel). Tự đăng ký kênh của mình vẫn hợp lệ.
func (s *SubscriptionService) Toggle(ctx context.Context, subscriber, channel primitive.ObjectID) (*subscriptiondto.ToggleResult, error) {
	filter := BuildToggleFilter(subscriber, channel)

	_, err := s.FindOneAndDelete(ctx, filter, nil)
	if err == nil {
		return &subscriptiondto.ToggleResult{Subscribed: false}, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	created, err := s.InsertOne(ctx, subscriptionmodels.Subscription{
		Subscriber: subscriber,
		Channel:    channel,
	})
	if err != nil {
		// Toggle khác vừa chèn trước (race): coi như đã đăng ký, trả về bản ghi hiện có
		if errors.Is(err, common.ErrMongoDuplicate) {
			existing, findErr := s.FindOne(ctx, filter, nil)
			if findErr != nil {
				return nil, findErr
			}
			return &subscriptiondto.ToggleResult{Subscribed: true, Subscription: &existing}, nil
		}
		return nil, err
	}

	return &subscriptiondto.ToggleResult{Subscribed: true, Subscription: &created}, nil
}

// lookupProfiles dựng pipeline join profile user cho một phía của subscription
func lookupProfiles(matchField string, matchID primitive.ObjectID, localField, as string) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{matchField: matchID}}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         global.MongoDB_ColNames.Users,
			"localField":   localField,
			"foreignField": "_id",
			"as":           as,
			"pipeline": mongo.Pipeline{
				{{Key: "$project", Value: bson.M{"username": 1, "fullName": 1, "avatar": 1}}},
			},
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$" + as, "preserveNullAndEmptyArrays": true}}},
	}
}

// ListSubscribers liệt kê người đăng ký của một kênh, mới đăng ký trước.
// Trả về ErrNotFound khi kênh chưa có người đăng ký (policy kế thừa, không trả danh sách rỗng).
func (s *SubscriptionService) ListSubscribers(ctx context.Context, channel primitive.ObjectID) ([]subscriptiondto.SubscriberEntry, error) {
	var items []subscriptiondto.SubscriberEntry
	if err := s.Aggregate(ctx, lookupProfiles("channel", channel, "subscriber", "subscriberProfile"), &items); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, common.ErrNotFound
	}
	return items, nil
}

// ListSubscribedChannels liệt kê các kênh mà một user đã đăng ký, mới đăng ký trước.
// Trả về ErrNotFound khi user chưa đăng ký kênh nào.
func (s *SubscriptionService) ListSubscribedChannels(ctx context.Context, subscriber primitive.ObjectID) ([]subscriptiondto.ChannelEntry, error) {
	var items []subscriptiondto.ChannelEntry
	if err := s.Aggregate(ctx, lookupProfiles("subscriber", subscriber, "channel", "channelProfile"), &items); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, common.ErrNotFound
	}
	return items, nil
}
