package model

import (
	"errors"

	"mediabox/backend/common"
)

// AdminConfig is the single administrator credential record. The password
// is only ever stored as a bcrypt hash.
type AdminConfig struct {
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash"`
}

const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin123"
)

var ErrWrongPassword = errors.New("current password does not match")

func defaultAdminConfig() AdminConfig {
	hash, err := common.Password2Hash(defaultAdminPassword)
	if err != nil {
		common.FatalLog("failed to hash default admin password: " + err.Error())
	}
	return AdminConfig{
		Username:     defaultAdminUsername,
		PasswordHash: hash,
	}
}

func GetAdminConfig() AdminConfig {
	return adminStore.Get()
}

// Authenticate checks the supplied credentials against the stored record.
func Authenticate(username string, password string) bool {
	cfg := adminStore.Get()
	return username == cfg.Username && common.ValidatePasswordAndHash(password, cfg.PasswordHash)
}

// ChangePassword re-hashes and persists the new password after verifying
// the current one. Returns ErrWrongPassword when verification fails.
func ChangePassword(currentPassword string, newPassword string) error {
	cfg := adminStore.Get()
	if !common.ValidatePasswordAndHash(currentPassword, cfg.PasswordHash) {
		return ErrWrongPassword
	}
	hash, err := common.Password2Hash(newPassword)
	if err != nil {
		return err
	}
	return adminStore.Update(func(c *AdminConfig) {
		c.PasswordHash = hash
	})
}
