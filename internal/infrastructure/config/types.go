package config

// UIConfig is the root config for ui.json
type UIConfig struct {
	Display     DisplayConfig     `json:"display"`
	Transitions TransitionsConfig `json:"transitions"`
	Audio       AudioConfig       `json:"audio"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Scale        int `json:"scale"`
	Framerate    int `json:"framerate"`
}

// TransitionsConfig holds the default transition durations, in seconds.
// Zero means instantaneous.
type TransitionsConfig struct {
	MenuOn      float64 `json:"menuOn"`
	MenuOff     float64 `json:"menuOff"`
	GameplayOn  float64 `json:"gameplayOn"`
	GameplayOff float64 `json:"gameplayOff"`
	PopupOn     float64 `json:"popupOn"`
	PopupOff    float64 `json:"popupOff"`
}

type AudioConfig struct {
	Enabled bool `json:"enabled"`
}
