package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyExt(t *testing.T) {
	tests := []struct {
		ext  string
		want MediaType
	}{
		{".jpg", MediaImage},
		{".JPEG", MediaImage},
		{".png", MediaImage},
		{".gif", MediaImage},
		{".webp", MediaImage},
		{".mp4", MediaVideo},
		{".webm", MediaVideo},
		{".MOV", MediaVideo},
		{".mp3", MediaAudio},
		{".wav", MediaAudio},
		{".ogg", MediaAudio},
		{".m4a", MediaAudio},
		{".pdf", MediaOther},
		{".bin", MediaOther},
		{"", MediaOther},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyExt(tt.ext), "ext %q", tt.ext)
	}
}
