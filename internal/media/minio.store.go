package media

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"video_tube/config"
	"video_tube/internal/common"
	"video_tube/internal/logger"
)

// MinioStore là implementation của Store trên MinIO (S3-compatible).
// Cấu hình được truyền vào lúc khởi tạo; client dùng chung cho toàn bộ lifetime của process.
type MinioStore struct {
	client         *minio.Client
	bucket         string
	publicEndpoint string
}

// NewMinioStore khởi tạo client MinIO và đảm bảo bucket tồn tại với policy đọc public.
func NewMinioStore(cfg *config.Configuration) (*MinioStore, error) {
	client, err := minio.New(cfg.Media_Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Media_AccessKey, cfg.Media_SecretKey, ""),
		Secure: cfg.Media_UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create media store client: %w", err)
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.Media_Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check media bucket: %w", err)
	}

	if !exists {
		if err := client.MakeBucket(ctx, cfg.Media_Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create media bucket: %w", err)
		}

		// Bucket chứa asset public (URL được nhúng thẳng vào response)
		policy := `{
			"Version": "2012-10-17",
			"Statement": [
				{
					"Effect": "Allow",
					"Principal": "*",
					"Action": "s3:GetObject",
					"Resource": "arn:aws:s3:::` + cfg.Media_Bucket + `/*"
				}
			]
		}`
		if err := client.SetBucketPolicy(ctx, cfg.Media_Bucket, policy); err != nil {
			return nil, fmt.Errorf("failed to set media bucket policy: %w", err)
		}
		logger.GetAppLogger().Infof("Media bucket %s created", cfg.Media_Bucket)
	}

	return &MinioStore{
		client:         client,
		bucket:         cfg.Media_Bucket,
		publicEndpoint: strings.TrimRight(cfg.Media_PublicEndpoint, "/"),
	}, nil
}

// Upload đẩy một file từ multipart request lên media store.
// Resource type được suy ra từ Content-Type của file (video/* → video, còn lại → image).
func (s *MinioStore) Upload(ctx context.Context, file *multipart.FileHeader) (*Asset, error) {
	if file == nil {
		return nil, common.ErrRequiredField
	}

	src, err := file.Open()
	if err != nil {
		return nil, common.NewError(common.ErrCodeMediaStorage, "Không đọc được file upload", common.StatusBadRequest, err)
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	resourceType := ResourceTypeImage
	if strings.HasPrefix(contentType, "video/") {
		resourceType = ResourceTypeVideo
	}

	// Object key duy nhất, giữ extension gốc để Content-Type hoạt động đúng khi serve
	publicID := fmt.Sprintf("%s/%s%s", resourceType, uuid.NewString(), filepath.Ext(file.Filename))

	if _, err := s.client.PutObject(ctx, s.bucket, publicID, src, file.Size, minio.PutObjectOptions{
		ContentType: contentType,
	}); err != nil {
		logger.GetAppLogger().WithError(err).Error("Media upload failed")
		return nil, common.ErrMediaUpload
	}

	return &Asset{
		URL:          fmt.Sprintf("%s/%s/%s", s.publicEndpoint, s.bucket, publicID),
		PublicID:     publicID,
		ResourceType: resourceType,
	}, nil
}

// Delete xóa một file khỏi media store theo publicID.
// File không tồn tại được coi là thành công, thao tác idempotent, giống semantics
// "ok | not found" của các media provider.
func (s *MinioStore) Delete(ctx context.Context, publicID string, resourceType string) error {
	if publicID == "" {
		return common.ErrRequiredField
	}

	if _, err := s.client.StatObject(ctx, s.bucket, publicID, minio.StatObjectOptions{}); err != nil {
		var minioErr minio.ErrorResponse
		if errors.As(err, &minioErr) && minioErr.Code == "NoSuchKey" {
			logger.GetAppLogger().WithField("publicId", publicID).Warn("Media asset already absent on delete")
			return nil
		}
		logger.GetAppLogger().WithError(err).Error("Media stat failed")
		return common.ErrMediaDelete
	}

	if err := s.client.RemoveObject(ctx, s.bucket, publicID, minio.RemoveObjectOptions{}); err != nil {
		logger.GetAppLogger().WithError(err).Error("Media delete failed")
		return common.ErrMediaDelete
	}

	return nil
}
