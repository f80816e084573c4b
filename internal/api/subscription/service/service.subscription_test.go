// Package subscriptionsvc - Test dựng filter toggle và nghiệp vụ subscription trên store giả lập.
package subscriptionsvc

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "video_tube/internal/api/base/service"
	subscriptionmodels "video_tube/internal/api/subscription/models"
	"video_tube/internal/common"
)

func TestBuildToggleFilter(t *testing.T) {
	subscriber := primitive.NewObjectID()
	channel := primitive.NewObjectID()

	filter := BuildToggleFilter(subscriber, channel)
	if len(filter) != 2 {
		t.Fatalf("filter phải có đúng 2 điều kiện, nhận %v", filter)
	}
	if filter["subscriber"] != subscriber {
		t.Errorf("filter subscriber sai: %v", filter["subscriber"])
	}
	if filter["channel"] != channel {
		t.Errorf("filter channel sai: %v", filter["channel"])
	}
}

func TestBuildToggleFilter_TuDangKyKenhCuaMinh(t *testing.T) {
	// Tự đăng ký kênh của chính mình vẫn là một filter hợp lệ
	me := primitive.NewObjectID()
	filter := BuildToggleFilter(me, me)
	if filter["subscriber"] != me || filter["channel"] != me {
		t.Errorf("tự đăng ký phải cho filter (me, me), nhận %v", filter)
	}
}

// fakeSubscriptionStore giả lập store subscription trong bộ nhớ, key theo (subscriber, channel)
type fakeSubscriptionStore struct {
	basesvc.BaseServiceMongo[subscriptionmodels.Subscription]

	docs map[string]subscriptionmodels.Subscription
}

func subKey(subscriber, channel primitive.ObjectID) string {
	return subscriber.Hex() + "/" + channel.Hex()
}

func subFilterKey(filter bson.M) string {
	return subKey(filter["subscriber"].(primitive.ObjectID), filter["channel"].(primitive.ObjectID))
}

func (f *fakeSubscriptionStore) InsertOne(_ context.Context, data subscriptionmodels.Subscription) (subscriptionmodels.Subscription, error) {
	key := subKey(data.Subscriber, data.Channel)
	if _, exists := f.docs[key]; exists {
		return subscriptionmodels.Subscription{}, common.ErrMongoDuplicate
	}
	data.ID = primitive.NewObjectID()
	f.docs[key] = data
	return data, nil
}

func (f *fakeSubscriptionStore) FindOne(_ context.Context, filter interface{}, _ *options.FindOneOptions) (subscriptionmodels.Subscription, error) {
	if doc, exists := f.docs[subFilterKey(filter.(bson.M))]; exists {
		return doc, nil
	}
	return subscriptionmodels.Subscription{}, common.ErrNotFound
}

func (f *fakeSubscriptionStore) FindOneAndDelete(_ context.Context, filter interface{}, _ *options.FindOneAndDeleteOptions) (subscriptionmodels.Subscription, error) {
	key := subFilterKey(filter.(bson.M))
	doc, exists := f.docs[key]
	if !exists {
		return subscriptionmodels.Subscription{}, common.ErrNotFound
	}
	delete(f.docs, key)
	return doc, nil
}

func TestToggle_DaoTrangThaiLuanPhien(t *testing.T) {
	ctx := context.Background()
	subscriber := primitive.NewObjectID()
	channel := primitive.NewObjectID()

	store := &fakeSubscriptionStore{docs: map[string]subscriptionmodels.Subscription{}}
	svc := &SubscriptionService{BaseServiceMongo: store}

	// Lần 1: đăng ký
	result, err := svc.Toggle(ctx, subscriber, channel)
	if err != nil {
		t.Fatalf("toggle lần 1 lỗi: %v", err)
	}
	if !result.Subscribed || result.Subscription == nil {
		t.Fatalf("toggle lần 1 phải tạo subscription, nhận %+v", result)
	}

	// Lần 2: hủy đăng ký
	result, err = svc.Toggle(ctx, subscriber, channel)
	if err != nil {
		t.Fatalf("toggle lần 2 lỗi: %v", err)
	}
	if result.Subscribed || len(store.docs) != 0 {
		t.Fatalf("toggle lần 2 phải gỡ subscription, store còn %d bản ghi", len(store.docs))
	}

	// Lần 3: đăng ký lại, luân phiên không để lại trạng thái thừa
	result, err = svc.Toggle(ctx, subscriber, channel)
	if err != nil {
		t.Fatalf("toggle lần 3 lỗi: %v", err)
	}
	if !result.Subscribed || len(store.docs) != 1 {
		t.Fatalf("toggle lần 3 phải tạo lại subscription, store có %d bản ghi", len(store.docs))
	}
}

// Aggregate giả lập pipeline không có kết quả: không ghi gì vào results
func (f *fakeSubscriptionStore) Aggregate(context.Context, interface{}, interface{}) error {
	return nil
}

func TestListSubscribers_DanhSachRongLaNotFound(t *testing.T) {
	ctx := context.Background()
	store := &fakeSubscriptionStore{docs: map[string]subscriptionmodels.Subscription{}}
	svc := &SubscriptionService{BaseServiceMongo: store}

	if _, err := svc.ListSubscribers(ctx, primitive.NewObjectID()); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("kênh không có subscriber phải trả về ErrNotFound, nhận %v", err)
	}

	if _, err := svc.ListSubscribedChannels(ctx, primitive.NewObjectID()); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("user chưa đăng ký kênh nào phải trả về ErrNotFound, nhận %v", err)
	}
}
