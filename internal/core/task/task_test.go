package task

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gustra/git-tasks/internal/core/config"
)

func TestStatusLine(t *testing.T) {
	tests := []struct {
		name string
		task Task
		want string
	}{
		{
			name: "populated",
			task: Task{ID: "generic-1", Title: "First issue", Status: "New"},
			want: "generic-1 (New): First issue",
		},
		{
			name: "empty fields render as empty strings",
			task: Task{ID: "generic-1"},
			want: "generic-1 (): ",
		},
		{
			name: "status only",
			task: Task{ID: "issue-9", Status: "Closed"},
			want: "issue-9 (Closed): ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.task.StatusLine())
		})
	}
}

func TestAnnotation(t *testing.T) {
	tests := []struct {
		name   string
		task   Task
		format string
		want   string
	}{
		{
			name:   "generic format",
			task:   Task{ID: "generic-1", RemoteID: "1", Title: "First issue"},
			format: config.MessageFormatGeneric,
			want:   "generic #1 First issue",
		},
		{
			name:   "generic format without title",
			task:   Task{ID: "generic-1", RemoteID: "1"},
			format: config.MessageFormatGeneric,
			want:   "generic #1",
		},
		{
			name: "default format",
			task: Task{ID: "generic-1", Title: "First issue", Status: "New"},
			want: "generic-1 (New): First issue",
		},
		{
			name: "default format with empty fields",
			task: Task{ID: "generic-1"},
			want: "generic-1 (): ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.task.Annotation(tt.format))
		})
	}
}
