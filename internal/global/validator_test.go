// Package global - Test custom validator.
package global

import "testing"

type idInput struct {
	ID string `validate:"omitempty,objectid"`
}

type sortInput struct {
	SortType string `validate:"sort_direction"`
}

func TestValidateObjectID(t *testing.T) {
	InitValidator()

	if err := Validate.Struct(&idInput{ID: "64f000000000000000000001"}); err != nil {
		t.Errorf("ObjectID hợp lệ không được báo lỗi: %v", err)
	}
	if err := Validate.Struct(&idInput{ID: ""}); err != nil {
		t.Errorf("chuỗi rỗng với omitempty không được báo lỗi: %v", err)
	}
	if err := Validate.Struct(&idInput{ID: "not-an-id"}); err == nil {
		t.Error("ID sai định dạng phải báo lỗi")
	}
}

func TestValidateSortDirection(t *testing.T) {
	InitValidator()

	for _, ok := range []string{"", "asc", "desc"} {
		if err := Validate.Struct(&sortInput{SortType: ok}); err != nil {
			t.Errorf("sortType %q phải hợp lệ: %v", ok, err)
		}
	}
	if err := Validate.Struct(&sortInput{SortType: "ascending"}); err == nil {
		t.Error("sortType không hợp lệ phải báo lỗi")
	}
}
