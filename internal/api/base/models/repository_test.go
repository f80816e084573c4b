// Test số học phân trang.
package models

import "testing"

func TestNormalizePage_MacDinh(t *testing.T) {
	page, limit := NormalizePage(0, 0)
	if page != 1 {
		t.Errorf("page mặc định phải là 1, nhận %d", page)
	}
	if limit != 10 {
		t.Errorf("limit mặc định phải là 10, nhận %d", limit)
	}

	page, limit = NormalizePage(-3, -1)
	if page != 1 || limit != 10 {
		t.Errorf("giá trị âm phải về mặc định, nhận page=%d limit=%d", page, limit)
	}

	page, limit = NormalizePage(3, 25)
	if page != 3 || limit != 25 {
		t.Errorf("giá trị hợp lệ phải giữ nguyên, nhận page=%d limit=%d", page, limit)
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total, limit, want int64
	}{
		{25, 10, 3}, // trang cuối có 5 item
		{30, 10, 3},
		{31, 10, 4},
		{1, 10, 1},
		{0, 10, 0}, // không có dữ liệu thì không có trang
		{9, 3, 3},
	}

	for _, c := range cases {
		if got := TotalPages(c.total, c.limit); got != c.want {
			t.Errorf("TotalPages(%d, %d) = %d, muốn %d", c.total, c.limit, got, c.want)
		}
	}
}
