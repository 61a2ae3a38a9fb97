package model

import (
	"io/fs"
	"strings"
	"time"
)

type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
	MediaAudio MediaType = "audio"
	MediaOther MediaType = "other"
)

var extTypes = map[string]MediaType{
	".jpg": MediaImage, ".jpeg": MediaImage, ".png": MediaImage, ".gif": MediaImage, ".webp": MediaImage,
	".mp4": MediaVideo, ".webm": MediaVideo, ".mov": MediaVideo,
	".mp3": MediaAudio, ".wav": MediaAudio, ".ogg": MediaAudio, ".m4a": MediaAudio,
}

// ClassifyExt maps a file extension (with leading dot, any case) to its
// media type. Classification is by extension only, never by content.
func ClassifyExt(ext string) MediaType {
	if t, ok := extTypes[strings.ToLower(ext)]; ok {
		return t
	}
	return MediaOther
}

// StoredFile is one entry of the managed directory as reported by the
// listing API. CreatedAt carries the file's mtime: entries are written once
// and never modified, so mtime equals creation time and stays portable
// across filesystems that lack a birth timestamp.
type StoredFile struct {
	Name       string    `json:"name"`
	Size       int64     `json:"size"`
	CreatedAt  time.Time `json:"createdAt"`
	ModifiedAt time.Time `json:"modifiedAt"`
	URL        string    `json:"url"`
	IsImage    bool      `json:"isImage"`
	IsVideo    bool      `json:"isVideo"`
	IsAudio    bool      `json:"isAudio"`
	Type       MediaType `json:"type"`
}

// NewStoredFile builds a StoredFile from a directory entry's stat snapshot.
func NewStoredFile(name string, info fs.FileInfo) StoredFile {
	ext := ""
	if idx := strings.LastIndexByte(name, '.'); idx >= 0 {
		ext = name[idx:]
	}
	t := ClassifyExt(ext)
	return StoredFile{
		Name:       name,
		Size:       info.Size(),
		CreatedAt:  info.ModTime(),
		ModifiedAt: info.ModTime(),
		URL:        "/uploads/" + name,
		IsImage:    t == MediaImage,
		IsVideo:    t == MediaVideo,
		IsAudio:    t == MediaAudio,
		Type:       t,
	}
}
