// Test load cấu hình từ environment variables.
package config

import (
	"os"
	"testing"
)

func TestNewConfig_ThieuBienBatBuoc(t *testing.T) {
	os.Unsetenv("JWT_SECRET")

	if cfg := NewConfig(); cfg != nil {
		t.Errorf("thiếu JWT_SECRET thì NewConfig phải trả về nil, nhận %+v", cfg)
	}
}

func TestNewConfig_DuBienBatBuoc(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("MONGODB_CONNECTION_URI", "mongodb://localhost:27017")
	t.Setenv("MEDIA_ENDPOINT", "localhost:9000")
	t.Setenv("MEDIA_PUBLIC_ENDPOINT", "http://localhost:9000")
	t.Setenv("MEDIA_ACCESS_KEY", "media")
	t.Setenv("MEDIA_SECRET_KEY", "media-secret")
	os.Unsetenv("MONGODB_DBNAME")

	cfg := NewConfig()
	if cfg == nil {
		t.Fatal("đủ biến bắt buộc thì NewConfig không được trả về nil")
	}
	if cfg.JwtSecret != "test-secret" {
		t.Errorf("JwtSecret sai: %q", cfg.JwtSecret)
	}
	if cfg.MongoDB_DBName != "video_tube" {
		t.Errorf("MongoDB_DBName phải dùng giá trị mặc định, nhận %q", cfg.MongoDB_DBName)
	}
}
