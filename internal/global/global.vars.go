package global

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	Users         string // Tên collection cho người dùng (chỉ đọc, profile join)
	Videos        string // Tên collection cho video
	Comments      string // Tên collection cho bình luận
	Likes         string // Tên collection cho lượt thích
	Tweets        string // Tên collection cho tweet
	Playlists     string // Tên collection cho playlist
	Subscriptions string // Tên collection cho lượt đăng ký kênh
}

// MongoDB_ColNames tên các collection, gán một lần lúc khởi động process
var MongoDB_ColNames = MongoDB_CollectionName{
	Users:         "users",
	Videos:        "videos",
	Comments:      "comments",
	Likes:         "likes",
	Tweets:        "tweets",
	Playlists:     "playlists",
	Subscriptions: "subscriptions",
}
