// Package basesvc - Test chuyển đổi dữ liệu update.
package basesvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToUpdateData_MapThuongWrapTrongSet(t *testing.T) {
	update, err := ToUpdateData(map[string]interface{}{
		"title": "Video mới",
		"views": 10,
	})
	require.NoError(t, err)
	require.NotNil(t, update)

	assert.Equal(t, "Video mới", update.Set["title"])
	assert.Empty(t, update.Push)
	assert.Empty(t, update.Pull)
}

func TestToUpdateData_GiuNguyenUpdateData(t *testing.T) {
	in := &UpdateData{
		Push: map[string]interface{}{"videos": "abc"},
	}
	update, err := ToUpdateData(in)
	require.NoError(t, err)
	assert.Same(t, in, update)
}

func TestToUpdateData_MapCoOperator(t *testing.T) {
	update, err := ToUpdateData(map[string]interface{}{
		"$set":  map[string]interface{}{"name": "Favorites"},
		"$pull": map[string]interface{}{"videos": "abc"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Favorites", update.Set["name"])
	assert.Equal(t, "abc", update.Pull["videos"])
	assert.Empty(t, update.Unset)
}

func TestToUpdateData_StructChuyenThanhSet(t *testing.T) {
	type input struct {
		Content string `json:"content"`
	}
	update, err := ToUpdateData(input{Content: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "hello", update.Set["content"])
}
