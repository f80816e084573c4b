package utility

import (
	"strconv"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// P2Int64 parse chuỗi thành int64, trả về 0 nếu không hợp lệ
func P2Int64(s string) int64 {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// String2ObjectID chuyển đổi chuỗi thành ObjectID.
// Trả về primitive.NilObjectID nếu chuỗi không hợp lệ, caller phải validate trước.
func String2ObjectID(id string) primitive.ObjectID {
	objectId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID
	}
	return objectId
}
