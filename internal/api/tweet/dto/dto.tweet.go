// Package tweetdto chứa DTO cho domain Tweet.
package tweetdto

import (
	tweetmodels "video_tube/internal/api/tweet/models"
	usermodels "video_tube/internal/api/user/models"
)

// TweetCreateInput là input khi đăng tweet mới
type TweetCreateInput struct {
	Content string `json:"content" validate:"required"` // Nội dung tweet
}

// TweetUpdateInput là input khi sửa tweet (partial update, chỉ có content)
type TweetUpdateInput struct {
	Content string `json:"content" validate:"required"` // Nội dung mới
}

// TweetWithAuthor là tweet kèm profile người đăng (kết quả $lookup)
type TweetWithAuthor struct {
	tweetmodels.Tweet `bson:",inline"`
	Author            usermodels.Profile `json:"author" bson:"author"`
}
