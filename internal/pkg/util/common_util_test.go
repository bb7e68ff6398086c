package util

import (
	"reflect"
	"testing"
)

func TestExtractTags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "无标签返回空",
			content: "plain text without tags",
			want:    nil,
		},
		{
			name:    "提取多个标签",
			content: "learning #golang and #kafka today",
			want:    []string{"golang", "kafka"},
		},
		{
			name:    "重复标签去重且保序",
			content: "#go #es #go",
			want:    []string{"go", "es"},
		},
		{
			name:    "去掉结尾标点",
			content: "shipped it #golang! thoughts? #devlog.",
			want:    []string{"golang", "devlog"},
		},
		{
			name:    "支持中文标签",
			content: "今天聊聊 #技术分享， 顺便记录 #日常。",
			want:    []string{"技术分享", "日常"},
		},
		{
			name:    "纯井号不算标签",
			content: "odd input # ## #!",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ExtractTags(tt.content)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractTags(%q) = %v, want %v", tt.content, got, tt.want)
			}
		})
	}
}
