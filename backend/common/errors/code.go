package errors

// Generic errors
const (
	ErrInternalServer = "ERR_INTERNAL_SERVER"
	ErrInvalidParam   = "ERR_INVALID_PARAM"
	ErrUnauthorized   = "ERR_UNAUTHORIZED"
)

// Auth errors
const (
	ErrInvalidCredentials   = "ERR_INVALID_CREDENTIALS"
	ErrWrongCurrentPassword = "ERR_WRONG_CURRENT_PASSWORD"
	ErrSavePassword         = "ERR_SAVE_PASSWORD"
)

// File repository errors
const (
	ErrReadUploadDir   = "ERR_READ_UPLOAD_DIR"
	ErrInvalidFilename = "ERR_INVALID_FILENAME"
	ErrDeleteFile      = "ERR_DELETE_FILE"
)

// Upload errors
const (
	ErrNoFilesUploaded = "ERR_NO_FILES_UPLOADED"
	ErrTooManyFiles    = "ERR_TOO_MANY_FILES"
	ErrFileTooLarge    = "ERR_FILE_TOO_LARGE"
	ErrSaveFile        = "ERR_SAVE_FILE"
)

// Remote fetch errors
const (
	ErrMissingURLList  = "ERR_MISSING_URL_LIST"
	ErrMissingURLParam = "ERR_MISSING_URL_PARAM"
	ErrInvalidURL      = "ERR_INVALID_URL"
	ErrFetchFailed     = "ERR_FETCH_FAILED"
	ErrConvertServer   = "ERR_CONVERT_SERVER"
)

// Config errors
const (
	ErrEmptyBody        = "ERR_EMPTY_BODY"
	ErrSaveSettings     = "ERR_SAVE_SETTINGS"
	ErrSaveAnnouncement = "ERR_SAVE_ANNOUNCEMENT"
	ErrLoadAnnouncement = "ERR_LOAD_ANNOUNCEMENT"
)
