package i18n

import (
	"fmt"
	"strings"

	mberrors "mediabox/backend/common/errors"
)

const defaultLang = "vi"

// The site is Vietnamese-facing, so "vi" is the default and the wire
// messages for it match the original deployment exactly. A handful of
// messages were English there and stay English in both catalogs.
var messages = map[string]map[string]string{
	"vi": {
		mberrors.ErrInternalServer:       "Lỗi máy chủ nội bộ",
		mberrors.ErrInvalidParam:         "Tham số không hợp lệ",
		mberrors.ErrUnauthorized:         "Unauthorized",
		mberrors.ErrInvalidCredentials:   "Tên đăng nhập hoặc mật khẩu không đúng",
		mberrors.ErrWrongCurrentPassword: "Mật khẩu hiện tại không đúng",
		mberrors.ErrSavePassword:         "Không thể lưu mật khẩu mới",
		mberrors.ErrReadUploadDir:        "Không thể đọc thư mục upload",
		mberrors.ErrInvalidFilename:      "Tên file không hợp lệ",
		mberrors.ErrDeleteFile:           "Không thể xóa file",
		mberrors.ErrNoFilesUploaded:      "Không có file nào được tải lên",
		mberrors.ErrTooManyFiles:         "Vượt quá số lượng file cho phép (tối đa %d)",
		mberrors.ErrFileTooLarge:         "File %s vượt quá dung lượng cho phép (%d MB)",
		mberrors.ErrSaveFile:             "Không thể lưu file",
		mberrors.ErrMissingURLList:       "Thiếu danh sách URL",
		mberrors.ErrMissingURLParam:      "Thiếu tham số URL",
		mberrors.ErrInvalidURL:           "URL không hợp lệ",
		mberrors.ErrFetchFailed:          "Lỗi khi tải file",
		mberrors.ErrConvertServer:        "Lỗi server khi chuyển đổi",
		mberrors.ErrEmptyBody:            "Request body is missing or empty",
		mberrors.ErrSaveSettings:         "Could not save settings",
		mberrors.ErrSaveAnnouncement:     "Không thể lưu thông báo",
		mberrors.ErrLoadAnnouncement:     "Không thể tải thông báo",
	},
	"en": {
		mberrors.ErrInternalServer:       "Internal server error",
		mberrors.ErrInvalidParam:         "Invalid parameter",
		mberrors.ErrUnauthorized:         "Unauthorized",
		mberrors.ErrInvalidCredentials:   "Wrong username or password",
		mberrors.ErrWrongCurrentPassword: "Current password is incorrect",
		mberrors.ErrSavePassword:         "Could not save new password",
		mberrors.ErrReadUploadDir:        "Could not read upload directory",
		mberrors.ErrInvalidFilename:      "Invalid filename",
		mberrors.ErrDeleteFile:           "Could not delete file",
		mberrors.ErrNoFilesUploaded:      "No files were uploaded",
		mberrors.ErrTooManyFiles:         "Too many files (max %d)",
		mberrors.ErrFileTooLarge:         "File %s exceeds the size limit (%d MB)",
		mberrors.ErrSaveFile:             "Could not save file",
		mberrors.ErrMissingURLList:       "Missing URL list",
		mberrors.ErrMissingURLParam:      "Missing URL parameter",
		mberrors.ErrInvalidURL:           "Invalid URL",
		mberrors.ErrFetchFailed:          "Failed to download file",
		mberrors.ErrConvertServer:        "Server error during conversion",
		mberrors.ErrEmptyBody:            "Request body is missing or empty",
		mberrors.ErrSaveSettings:         "Could not save settings",
		mberrors.ErrSaveAnnouncement:     "Could not save announcement",
		mberrors.ErrLoadAnnouncement:     "Could not load announcement",
	},
}

// Translate resolves an error code for the given language, falling back to
// the default language and finally to the code itself.
func Translate(code string, lang string, args ...interface{}) string {
	lang = normalizeLang(lang)
	msg, ok := messages[lang][code]
	if !ok {
		msg, ok = messages[defaultLang][code]
	}
	if !ok {
		return code
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

func normalizeLang(lang string) string {
	if lang == "" {
		return defaultLang
	}
	// "en-US" -> "en"
	if idx := strings.IndexAny(lang, "-_"); idx > 0 {
		lang = lang[:idx]
	}
	return strings.ToLower(lang)
}
