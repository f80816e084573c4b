package global

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Validate biến toàn cục để xác thực dữ liệu DTO theo struct tag
var Validate *validator.Validate

// InitValidator khởi tạo và đăng ký các custom validator
func InitValidator() {
	Validate = validator.New()

	// Đăng ký các custom validator
	_ = Validate.RegisterValidation("objectid", validateObjectID)
	_ = Validate.RegisterValidation("sort_direction", validateSortDirection)
}

// validateObjectID kiểm tra chuỗi có đúng định dạng MongoDB ObjectID (hex 24 ký tự)
func validateObjectID(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		// Chuỗi rỗng để cho tag required/omitempty quyết định
		return true
	}
	return primitive.IsValidObjectID(value)
}

// validateSortDirection kiểm tra hướng sort hợp lệ (asc/desc)
func validateSortDirection(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "", "asc", "desc":
		return true
	}
	return false
}
