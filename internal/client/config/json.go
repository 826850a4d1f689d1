package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/daybookapp/daybook/internal/flagx"
	"github.com/daybookapp/daybook/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "3s"
// or as integer nanoseconds. After parsing, values are copied into the
// runtime Config (which uses time.Duration).
type JsonConfig struct {
	ServerBaseURL       string         `json:"server_base_url"`
	DatabasePath        string         `json:"database_path"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
	AutosaveDebounce    timex.Duration `json:"autosave_debounce"`
	SavedStatusWindow   timex.Duration `json:"saved_status_window"`
	SettingsDebounce    timex.Duration `json:"settings_debounce"`
}

// parseJson overlays Config with values loaded from a JSON file named by the
// -c/-config flags. Zero-valued JSON fields leave the config untouched.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.OnlineCheckInterval.Duration > 0 {
		cfg.OnlineCheckInterval = time.Duration(jc.OnlineCheckInterval.Duration)
	}
	if jc.AutosaveDebounce.Duration > 0 {
		cfg.AutosaveDebounce = time.Duration(jc.AutosaveDebounce.Duration)
	}
	if jc.SavedStatusWindow.Duration > 0 {
		cfg.SavedStatusWindow = time.Duration(jc.SavedStatusWindow.Duration)
	}
	if jc.SettingsDebounce.Duration > 0 {
		cfg.SettingsDebounce = time.Duration(jc.SettingsDebounce.Duration)
	}
}
