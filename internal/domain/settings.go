package domain

import "github.com/bytedance/sonic"

// 设置表的保留 key
const (
	SettingKeyAppearance  = "appearance"
	SettingKeyPreferences = "preferences"
	SettingKeyAI          = "ai"
)

// AppearanceSettings 外观设置
type AppearanceSettings struct {
	ThemeID          string `json:"themeId"`
	DarkMode         string `json:"darkMode"`
	InterfaceDensity string `json:"interfaceDensity"`
}

// PreferenceSettings 通用偏好设置
type PreferenceSettings struct {
	Language string `json:"language"`

	// 新任务默认值，nil 表示不设置
	DefaultNewTaskDueDate  *int64 `json:"defaultNewTaskDueDate"`
	DefaultNewTaskPriority *int   `json:"defaultNewTaskPriority"`
	DefaultNewTaskList     string `json:"defaultNewTaskList"`

	ConfirmDeletions bool `json:"confirmDeletions"`
}

// AISettings AI 供应商配置
type AISettings struct {
	Provider        string   `json:"provider"`
	APIKey          string   `json:"apiKey"`
	Model           string   `json:"model"`
	BaseURL         string   `json:"baseUrl"`
	AvailableModels []string `json:"availableModels"`
}

// DefaultAppearance returns the appearance settings seeded into a fresh database.
func DefaultAppearance() AppearanceSettings {
	return AppearanceSettings{
		ThemeID:          "default-coral",
		DarkMode:         "system",
		InterfaceDensity: "default",
	}
}

// DefaultPreferences returns the preference settings seeded into a fresh database.
func DefaultPreferences() PreferenceSettings {
	return PreferenceSettings{
		Language:           "zh-CN",
		DefaultNewTaskList: "Inbox",
		ConfirmDeletions:   true,
	}
}

// DefaultAI returns the AI settings seeded into a fresh database.
func DefaultAI() AISettings {
	return AISettings{
		Provider:        "openai",
		AvailableModels: []string{},
	}
}

// EncodeSetting serializes a settings value the way it is stored in the
// settings table.
func EncodeSetting(v interface{}) (string, error) {
	b, err := sonic.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodeSetting parses a stored settings value.
func DecodeSetting(s string, v interface{}) error {
	return sonic.Unmarshal([]byte(s), v)
}
