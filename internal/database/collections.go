package database

import (
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"video_tube/config"
	"video_tube/internal/global"
	"video_tube/internal/logger"
	"video_tube/internal/registry"
)

// NewCollections khởi tạo và đăng ký các collections MongoDB vào một registry mới.
// Registry được truyền tường minh vào constructor của từng service, không dùng biến toàn cục.
func NewCollections(client *mongo.Client, cfg *config.Configuration) (*registry.Registry[*mongo.Collection], error) {
	db := client.Database(cfg.MongoDB_DBName)
	cols := registry.NewRegistry[*mongo.Collection]()

	colNames := []string{
		global.MongoDB_ColNames.Users,
		global.MongoDB_ColNames.Videos,
		global.MongoDB_ColNames.Comments,
		global.MongoDB_ColNames.Likes,
		global.MongoDB_ColNames.Tweets,
		global.MongoDB_ColNames.Playlists,
		global.MongoDB_ColNames.Subscriptions,
	}

	log := logger.GetAppLogger()
	for _, name := range colNames {
		if _, err := cols.Register(name, db.Collection(name)); err != nil {
			return nil, fmt.Errorf("failed to register collection %s: %w", name, err)
		}
		log.Infof("Collection %s registered successfully", name)
	}

	return cols, nil
}
