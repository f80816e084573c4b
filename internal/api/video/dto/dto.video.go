// Package videodto chứa DTO cho domain Video.
// File: dto.video.go - giữ tên cấu trúc cũ (dto.<domain>.go).
package videodto

import (
	"strconv"

	usermodels "video_tube/internal/api/user/models"
	videomodels "video_tube/internal/api/video/models"
	"video_tube/internal/common"
)

// VideoCreateInput là input khi publish một video mới.
// File video và thumbnail đi kèm trong multipart form, không nằm trong struct này.
type VideoCreateInput struct {
	Title       string `json:"title" form:"title" validate:"required"`             // Tiêu đề
	Description string `json:"description" form:"description" validate:"required"` // Mô tả
}

// VideoListQuery là các tham số lọc/sắp xếp khi liệt kê video
type VideoListQuery struct {
	Query    string `query:"query"`                                  // Chuỗi tìm kiếm trên title (không phân biệt hoa thường)
	OwnerID  string `query:"ownerId" validate:"omitempty,objectid"`  // Lọc theo user sở hữu
	SortBy   string `query:"sortBy"`                                 // Trường sắp xếp (mặc định: createdAt)
	SortType string `query:"sortType" validate:"sort_direction"`     // asc | desc (mặc định: desc)
	Page     int64  `query:"page"`                                   // Số trang
	Limit    int64  `query:"limit"`                                  // Số item trên một trang
}

// VideoWithOwner là video kèm profile của chủ sở hữu (kết quả $lookup)
type VideoWithOwner struct {
	videomodels.Video `bson:",inline"`
	OwnerProfile      usermodels.Profile `json:"ownerProfile" bson:"ownerProfile"`
}

// BuildVideoSet gom các trường text cần cập nhật thành map $set.
// Trường rỗng coi như không thay đổi.
func BuildVideoSet(title, description string) map[string]interface{} {
	set := map[string]interface{}{}
	if title != "" {
		set["title"] = title
	}
	if description != "" {
		set["description"] = description
	}
	return set
}

// ParseDuration đọc thời lượng (giây) từ multipart form.
// Chuỗi rỗng coi như chưa biết thời lượng (0), chuỗi không hợp lệ hoặc âm là lỗi input.
func ParseDuration(raw string) (float64, error) {
	if raw == "" {
		return 0, nil
	}
	d, err := strconv.ParseFloat(raw, 64)
	if err != nil || d < 0 {
		return 0, common.NewError(
			common.ErrCodeValidationInput,
			"Thời lượng video không hợp lệ (field 'duration')",
			common.StatusBadRequest,
			err,
		)
	}
	return d, nil
}
