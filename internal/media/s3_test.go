package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMediaID(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "key without extension",
			url:  "http://localhost:9000/avatars/6f1a2f5e-1111-2222-3333-444455556666",
			want: "6f1a2f5e-1111-2222-3333-444455556666",
		},
		{
			name: "key with extension",
			url:  "https://cdn.example.com/avatars/profile-pic.png",
			want: "profile-pic",
		},
		{
			name: "key with several dots",
			url:  "https://cdn.example.com/avatars/photo.final.jpeg",
			want: "photo.final",
		},
		{
			name: "bare segment",
			url:  "photo",
			want: "photo",
		},
		{
			name: "empty url",
			url:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MediaID(tt.url))
		})
	}
}
