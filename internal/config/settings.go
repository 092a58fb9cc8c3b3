package config

import (
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every setting key when read from the environment
const EnvPrefix = "YTVD"

// Settings keys
const (
	KeyYTDLPPath        = "ytdlp_path"
	KeyInstallEngine    = "install_engine"
	KeyDefaultFolder    = "default_folder"
	KeyContainer        = "container"
	KeyMergeFormat      = "merge_format"
	KeyOutputTemplate   = "output_template"
	KeyProgressInterval = "progress_interval"
	KeyEventBuffer      = "event_buffer"
	KeyMetadataCacheTTL = "metadata_cache_ttl"
	KeyThreaded         = "threaded"
	KeyLanguage         = "language"
	KeyLogLevel         = "log_level"
	KeyLogFile          = "log_file"
	KeyLogFileMaxSizeMB = "log_file_max_size_mb"
)

// Default values
const (
	DefaultInstallEngine    = true
	DefaultContainer        = "mp4"
	DefaultMergeFormat      = "mp4"
	DefaultOutputTemplate   = "%(title)s.%(ext)s"
	DefaultProgressInterval = 250 * time.Millisecond
	DefaultEventBuffer      = 32
	DefaultMetadataCacheTTL = time.Duration(0)
	DefaultThreaded         = true
	DefaultLanguage         = "en"
	DefaultLogLevel         = "info"
	DefaultLogFileMaxSizeMB = 10
)

// Settings exposes read-only application configuration. Values come from
// YTVD_* environment variables over built-in defaults; nothing is persisted.
type Settings struct {
	v *viper.Viper
}

// NewSettings creates settings bound to the process environment
func NewSettings() *Settings {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetDefault(KeyYTDLPPath, "")
	v.SetDefault(KeyInstallEngine, DefaultInstallEngine)
	v.SetDefault(KeyDefaultFolder, "")
	v.SetDefault(KeyContainer, DefaultContainer)
	v.SetDefault(KeyMergeFormat, DefaultMergeFormat)
	v.SetDefault(KeyOutputTemplate, DefaultOutputTemplate)
	v.SetDefault(KeyProgressInterval, DefaultProgressInterval)
	v.SetDefault(KeyEventBuffer, DefaultEventBuffer)
	v.SetDefault(KeyMetadataCacheTTL, DefaultMetadataCacheTTL)
	v.SetDefault(KeyThreaded, DefaultThreaded)
	v.SetDefault(KeyLanguage, DefaultLanguage)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyLogFileMaxSizeMB, DefaultLogFileMaxSizeMB)

	return &Settings{v: v}
}

// GetYTDLPPath returns the yt-dlp executable override, empty to auto-resolve
func (s *Settings) GetYTDLPPath() string {
	return s.v.GetString(KeyYTDLPPath)
}

// GetInstallEngine returns whether yt-dlp should be resolved/installed at startup
func (s *Settings) GetInstallEngine() bool {
	return s.v.GetBool(KeyInstallEngine)
}

// GetDefaultFolder returns the folder pre-filled in the form
func (s *Settings) GetDefaultFolder() string {
	return s.v.GetString(KeyDefaultFolder)
}

// GetContainer returns the container extension qualities are listed for
func (s *Settings) GetContainer() string {
	if c := s.v.GetString(KeyContainer); c != "" {
		return c
	}
	return DefaultContainer
}

// GetMergeFormat returns the container video and audio are merged into
func (s *Settings) GetMergeFormat() string {
	if f := s.v.GetString(KeyMergeFormat); f != "" {
		return f
	}
	return DefaultMergeFormat
}

// GetOutputTemplate returns the filename template
func (s *Settings) GetOutputTemplate() string {
	if t := s.v.GetString(KeyOutputTemplate); t != "" {
		return t
	}
	return DefaultOutputTemplate
}

// GetProgressInterval returns how often engine progress is sampled
func (s *Settings) GetProgressInterval() time.Duration {
	if d := s.v.GetDuration(KeyProgressInterval); d > 0 {
		return d
	}
	return DefaultProgressInterval
}

// GetEventBuffer returns the worker → UI channel capacity
func (s *Settings) GetEventBuffer() int {
	value := s.v.GetInt(KeyEventBuffer)
	if value <= 0 {
		return DefaultEventBuffer
	}
	if value > 1024 {
		return 1024
	}
	return value
}

// GetMetadataCacheTTL returns how long extraction results are reused, 0 disables
func (s *Settings) GetMetadataCacheTTL() time.Duration {
	if d := s.v.GetDuration(KeyMetadataCacheTTL); d > 0 {
		return d
	}
	return 0
}

// GetThreaded returns whether engine calls run off the UI goroutine
func (s *Settings) GetThreaded() bool {
	return s.v.GetBool(KeyThreaded)
}

// GetLanguage returns the configured UI language
func (s *Settings) GetLanguage() string {
	if lang := s.v.GetString(KeyLanguage); lang != "" {
		return lang
	}
	return DefaultLanguage
}

// GetLogLevel returns the logrus level name
func (s *Settings) GetLogLevel() string {
	if level := s.v.GetString(KeyLogLevel); level != "" {
		return level
	}
	return DefaultLogLevel
}

// GetLogFile returns the rotating log file path, empty for console only
func (s *Settings) GetLogFile() string {
	return s.v.GetString(KeyLogFile)
}

// GetLogFileMaxSizeMB returns the size at which the log file rotates
func (s *Settings) GetLogFileMaxSizeMB() int {
	if size := s.v.GetInt(KeyLogFileMaxSizeMB); size > 0 {
		return size
	}
	return DefaultLogFileMaxSizeMB
}
