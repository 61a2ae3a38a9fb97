package model

// Settings bounds incoming uploads. Both limits are enforced by the upload
// handler; zero or negative values disable the corresponding check.
type Settings struct {
	MaxFiles      int `json:"maxFiles"`
	MaxFileSizeMB int `json:"maxFileSizeMB"`
}

func defaultSettings() Settings {
	return Settings{MaxFiles: 10, MaxFileSizeMB: 100}
}

func GetSettings() Settings {
	return settingsStore.Get()
}

// UpdateSettings overwrites the limits, keeping the current value for any
// field passed as zero.
func UpdateSettings(maxFiles int, maxFileSizeMB int) (Settings, error) {
	err := settingsStore.Update(func(s *Settings) {
		if maxFiles > 0 {
			s.MaxFiles = maxFiles
		}
		if maxFileSizeMB > 0 {
			s.MaxFileSizeMB = maxFileSizeMB
		}
	})
	return settingsStore.Get(), err
}
