// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	View     ViewConfig     `yaml:"view"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds window and frame pacing settings.
type GraphicsConfig struct {
	Width    int  `yaml:"width"`
	Height   int  `yaml:"height"`
	VSync    bool `yaml:"vsync"`
	FPSLimit int  `yaml:"fps_limit"`
}

// ViewConfig holds the interaction and projection constants. The defaults
// are documented here rather than scattered through the code: rotation
// sensitivity and auto-rotate speed are radians per pixel and radians per
// frame respectively.
type ViewConfig struct {
	DragSensitivity float32 `yaml:"drag_sensitivity"`
	ZoomStep        float32 `yaml:"zoom_step"`
	MinZoom         float32 `yaml:"min_zoom"`
	MaxZoom         float32 `yaml:"max_zoom"`
	AutoRotate      bool    `yaml:"auto_rotate"`
	AutoRotateSpeed float32 `yaml:"auto_rotate_speed"`
	CameraDistance  float32 `yaml:"camera_distance"`
	Scale           float32 `yaml:"scale"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:    1000,
			Height:   800,
			VSync:    true,
			FPSLimit: 60,
		},
		View: ViewConfig{
			DragSensitivity: 0.01,
			ZoomStep:        0.1,
			MinZoom:         0.1,
			MaxZoom:         10.0,
			AutoRotate:      true,
			AutoRotateSpeed: 0.01,
			CameraDistance:  8.0,
			Scale:           600.0,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
