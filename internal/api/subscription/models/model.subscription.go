package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Subscription là một lượt đăng ký kênh: subscriber theo dõi channel.
// Unique index (subscriber, channel) đảm bảo mỗi cặp chỉ có một bản ghi.
type Subscription struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`      // ID của subscription
	Subscriber primitive.ObjectID `json:"subscriber" bson:"subscriber"` // User đăng ký
	Channel    primitive.ObjectID `json:"channel" bson:"channel"`       // Kênh (user) được đăng ký
	CreatedAt  int64              `json:"createdAt" bson:"createdAt"`   // Thời gian tạo (unix milli)
	UpdatedAt  int64              `json:"updatedAt" bson:"updatedAt"`   // Thời gian cập nhật cuối (unix milli)
}
