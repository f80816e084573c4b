// Package videodto - Test gom trường partial update và parse thời lượng.
package videodto

import "testing"

func TestBuildVideoSet(t *testing.T) {
	set := BuildVideoSet("", "")
	if len(set) != 0 {
		t.Errorf("không có trường nào thì set phải rỗng, nhận %v", set)
	}

	set = BuildVideoSet("Tiêu đề mới", "")
	if len(set) != 1 || set["title"] != "Tiêu đề mới" {
		t.Errorf("chỉ title được set, nhận %v", set)
	}

	set = BuildVideoSet("a", "b")
	if set["title"] != "a" || set["description"] != "b" {
		t.Errorf("cả hai trường phải được set, nhận %v", set)
	}
}

func TestParseDuration(t *testing.T) {
	d, err := ParseDuration("")
	if err != nil || d != 0 {
		t.Errorf("chuỗi rỗng phải cho (0, nil), nhận (%v, %v)", d, err)
	}

	d, err = ParseDuration("123.5")
	if err != nil || d != 123.5 {
		t.Errorf("phải parse được số thập phân, nhận (%v, %v)", d, err)
	}

	if _, err = ParseDuration("abc"); err == nil {
		t.Error("chuỗi không phải số phải là lỗi input")
	}

	if _, err = ParseDuration("-10"); err == nil {
		t.Error("thời lượng âm phải là lỗi input")
	}
}
