package i18n

import (
	"testing"

	mberrors "mediabox/backend/common/errors"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		code     string
		lang     string
		expected string
	}{
		{mberrors.ErrInvalidURL, "vi", "URL không hợp lệ"},
		{mberrors.ErrInvalidURL, "en", "Invalid URL"},
		{mberrors.ErrInvalidCredentials, "vi", "Tên đăng nhập hoặc mật khẩu không đúng"},
		{mberrors.ErrNoFilesUploaded, "vi", "Không có file nào được tải lên"},
		// empty and region-qualified languages normalize
		{mberrors.ErrInvalidURL, "", "URL không hợp lệ"},
		{mberrors.ErrInvalidURL, "en-US", "Invalid URL"},
		{mberrors.ErrInvalidURL, "vi-VN", "URL không hợp lệ"},
		// unknown language falls back to the default
		{mberrors.ErrInvalidURL, "fr", "URL không hợp lệ"},
		// unknown code comes back as-is
		{"UNKNOWN_ERROR", "vi", "UNKNOWN_ERROR"},
	}

	for _, tt := range tests {
		result := Translate(tt.code, tt.lang)
		if result != tt.expected {
			t.Errorf("Translate(%s, %s) = %s, want %s", tt.code, tt.lang, result, tt.expected)
		}
	}
}

func TestTranslateWithArgs(t *testing.T) {
	got := Translate(mberrors.ErrTooManyFiles, "en", 10)
	want := "Too many files (max 10)"
	if got != want {
		t.Errorf("Translate with args = %s, want %s", got, want)
	}
}

func TestErrorCode(t *testing.T) {
	err := New(mberrors.ErrInvalidURL, "vi")
	if err.Error() != "URL không hợp lệ" {
		t.Errorf("New(ErrInvalidURL, vi).Error() = %s", err.Error())
	}
	if !IsErrorCode(err, mberrors.ErrInvalidURL) {
		t.Error("IsErrorCode failed to match")
	}
	if IsErrorCode(err, mberrors.ErrInvalidParam) {
		t.Error("IsErrorCode matched the wrong code")
	}
}
