package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "github.com/commitkind/commitkind/internal/model"
)

func TestPathFilter(t *testing.T) {
	filter := NewPathFilter("tests/", "*_pb2.py", "docs/**", "!docs/api.py", "  ")

	tests := []struct {
		path string
		want bool
	}{
		{"tests/test_client.py", true},
		{"pkg/tests/test_util.py", true},
		{"pkg/proto/service_pb2.py", true},
		{"docs/conf.py", true},
		{"docs/api.py", false},
		{"pkg/client.py", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, filter.Excluded(m.Path(tt.path)))
		})
	}

	assert.Equal(t, []string{"tests/", "*_pb2.py", "docs/**", "!docs/api.py"}, filter.Patterns())
}

func TestPathFilter_Nil(t *testing.T) {
	filter := NewPathFilter()
	assert.Nil(t, filter)
	assert.False(t, filter.Excluded("anything.py"))
	assert.False(t, filter.ExcludedRecord(m.ChangeRecord{Path: "a.py", Kind: m.ChangeAdded}))
	assert.Nil(t, filter.Patterns())
}

func TestPathFilter_ExcludedRecord(t *testing.T) {
	filter := NewPathFilter("vendor/")

	assert.True(t, filter.ExcludedRecord(m.ChangeRecord{Path: "vendor/lib.py", Kind: m.ChangeModified}))
	assert.True(t, filter.ExcludedRecord(m.ChangeRecord{Path: "vendor/lib.py", Kind: m.ChangeDeleted}))
	assert.False(t, filter.ExcludedRecord(m.ChangeRecord{Path: "pkg/lib.py", OldPath: "vendor/lib.py", Kind: m.ChangeRenamed}))
	assert.False(t, filter.ExcludedRecord(m.ChangeRecord{Path: "vendor/lib.py", OldPath: "pkg/lib.py", Kind: m.ChangeRenamed}))
}
