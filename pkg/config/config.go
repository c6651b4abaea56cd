package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Moderation ModerationConfig `mapstructure:"moderation"`
	Media      MediaConfig      `mapstructure:"media"`
	RateLimit  RateLimitConfig  `mapstructure:"rate_limit"`
	Storage    StorageConfig    `mapstructure:"storage"`
	Kafka      KafkaConfig      `mapstructure:"kafka"`
	JWT        JWTConfig        `mapstructure:"jwt"`
	Providers  ProvidersConfig  `mapstructure:"providers"`
}

type ServerConfig struct {
	Port        int           `mapstructure:"port"`
	MetricsPort int           `mapstructure:"metrics_port"`
	Host        string        `mapstructure:"host"`
	BodyLimitMB int           `mapstructure:"body_limit_mb"`
	ReadTimeout time.Duration `mapstructure:"read_timeout"`
	LogLevel    string        `mapstructure:"log_level"`
	LogToFile   bool          `mapstructure:"log_to_file"`
	EnableDocs  bool          `mapstructure:"enable_docs"`

	WebsocketMaxConnections int           `mapstructure:"websocket_max_connections"`
	ProgressRetention       time.Duration `mapstructure:"progress_retention"`
	CORSAllowedOrigins      []string      `mapstructure:"cors_allowed_origins"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	TLS      bool   `mapstructure:"tls"`
}

type ModerationConfig struct {
	Provider        string        `mapstructure:"provider"`
	Model           string        `mapstructure:"model"`
	MaxTokens       int           `mapstructure:"max_tokens"`
	Temperature     float64       `mapstructure:"temperature"`
	Timeout         time.Duration `mapstructure:"timeout"`
	MinTextLength   int           `mapstructure:"min_text_length"`
	ReviewThreshold float64       `mapstructure:"review_threshold"`
	RejectThreshold float64       `mapstructure:"reject_threshold"`

	// Pricing is USD per 1k tokens, keyed by model name.
	Pricing   map[string]ModelPrice `mapstructure:"pricing"`
	Blocklist map[string][]string   `mapstructure:"blocklist"`
}

type ModelPrice struct {
	Prompt     float64 `mapstructure:"prompt"`
	Completion float64 `mapstructure:"completion"`
}

type MediaConfig struct {
	MaxImageBytes       int64         `mapstructure:"max_image_bytes"`
	MaxVideoSourceBytes int64         `mapstructure:"max_video_source_bytes"`
	TargetVideoBytes    int64         `mapstructure:"target_video_bytes"`
	MaxVideoBytes       int64         `mapstructure:"max_video_bytes"`
	MaxVideoDuration    time.Duration `mapstructure:"max_video_duration"`
	MaxFilesPerPost     int           `mapstructure:"max_files_per_post"`
	AllowedImageTypes   []string      `mapstructure:"allowed_image_types"`
	AllowedVideoTypes   []string      `mapstructure:"allowed_video_types"`

	Compression CompressionConfig `mapstructure:"compression"`
	Safety      SafetyConfig      `mapstructure:"safety"`
	Classifier  ClassifierConfig  `mapstructure:"classifier"`
	Encoder     EncoderConfig     `mapstructure:"encoder"`
	FFmpeg      FFmpegConfig      `mapstructure:"ffmpeg"`
}

type CompressionConfig struct {
	VideoShare       float64 `mapstructure:"video_share"`
	AudioBitrateKbps int     `mapstructure:"audio_bitrate_kbps"`
	MinBitrateKbps   int     `mapstructure:"min_bitrate_kbps"`
	MaxBitrateKbps   int     `mapstructure:"max_bitrate_kbps"`
	MaxHeight        int     `mapstructure:"max_height"`
}

type SafetyConfig struct {
	FrameRatios       []float64 `mapstructure:"frame_ratios"`
	MaxFrameDimension int       `mapstructure:"max_frame_dimension"`
	MinPixels         int       `mapstructure:"min_pixels"`
	SkinThreshold     float64   `mapstructure:"skin_threshold"`
	PornThreshold     float64   `mapstructure:"porn_threshold"`
	SexyThreshold     float64   `mapstructure:"sexy_threshold"`
	TopLabelThreshold float64   `mapstructure:"top_label_threshold"`
	SkinMinY          uint8     `mapstructure:"skin_min_y"`
	SkinMinCb         uint8     `mapstructure:"skin_min_cb"`
	SkinMaxCb         uint8     `mapstructure:"skin_max_cb"`
	SkinMinCr         uint8     `mapstructure:"skin_min_cr"`
	SkinMaxCr         uint8     `mapstructure:"skin_max_cr"`
}

type ClassifierConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Model   string        `mapstructure:"model"`
	TopK    int           `mapstructure:"top_k"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type EncoderConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type FFmpegConfig struct {
	FFmpegPath  string `mapstructure:"ffmpeg_path"`
	FFprobePath string `mapstructure:"ffprobe_path"`
	WorkDir     string `mapstructure:"work_dir"`
}

type RateLimitConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	Limit   int           `mapstructure:"limit"`
	Window  time.Duration `mapstructure:"window"`
}

type StorageConfig struct {
	Bucket       string        `mapstructure:"bucket"`
	Region       string        `mapstructure:"region"`
	Endpoint     string        `mapstructure:"endpoint"`
	UsePathStyle bool          `mapstructure:"use_path_style"`
	KeyPrefix    string        `mapstructure:"key_prefix"`
	UploadTTL    time.Duration `mapstructure:"upload_ttl"`
	DownloadTTL  time.Duration `mapstructure:"download_ttl"`
}

type KafkaConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Brokers string `mapstructure:"brokers"`
	Topic   string `mapstructure:"topic"`
}

type JWTConfig struct {
	Secret string `mapstructure:"secret"`
	Issuer string `mapstructure:"issuer"`
}

var globalConfig Config

// Load reads config.yaml from configPath (then ./config and .), overlays the
// environment and fills defaults.
func Load(configPath string) error {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file config.yaml: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	globalConfig = cfg
	return nil
}

func GetConfig() *Config {
	return &globalConfig
}

func (c *Config) Validate() error {
	m := c.Moderation
	if m.ReviewThreshold < 0 || m.RejectThreshold > 1 || m.ReviewThreshold > m.RejectThreshold {
		return fmt.Errorf("invalid moderation thresholds: review %.2f, reject %.2f", m.ReviewThreshold, m.RejectThreshold)
	}
	md := c.Media
	if md.MaxVideoBytes < md.TargetVideoBytes {
		return fmt.Errorf("media.max_video_bytes (%d) must be >= media.target_video_bytes (%d)", md.MaxVideoBytes, md.TargetVideoBytes)
	}
	if c.Media.Classifier.TopK < 5 {
		return fmt.Errorf("media.classifier.top_k must be at least 5, got %d", c.Media.Classifier.TopK)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.metrics_port", 9090)
	v.SetDefault("server.body_limit_mb", 256)
	v.SetDefault("server.read_timeout", 2*time.Minute)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.enable_docs", true)
	v.SetDefault("server.websocket_max_connections", 1000)
	v.SetDefault("server.progress_retention", 10*time.Minute)
	v.SetDefault("server.cors_allowed_origins", []string{"*"})

	v.SetDefault("metrics.enabled", true)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)

	v.SetDefault("moderation.provider", "openai")
	v.SetDefault("moderation.model", "gpt-4o-mini")
	v.SetDefault("moderation.max_tokens", 512)
	v.SetDefault("moderation.temperature", 0.0)
	v.SetDefault("moderation.timeout", 10*time.Second)
	v.SetDefault("moderation.min_text_length", 3)
	v.SetDefault("moderation.review_threshold", 0.3)
	v.SetDefault("moderation.reject_threshold", 0.6)

	v.SetDefault("media.max_image_bytes", 10<<20)
	v.SetDefault("media.max_video_source_bytes", 500<<20)
	v.SetDefault("media.target_video_bytes", 50<<20)
	v.SetDefault("media.max_video_bytes", 100<<20)
	v.SetDefault("media.max_video_duration", 60*time.Second)
	v.SetDefault("media.max_files_per_post", 10)
	v.SetDefault("media.allowed_image_types", []string{"image/jpeg", "image/png", "image/gif", "image/webp"})
	v.SetDefault("media.allowed_video_types", []string{"video/mp4", "video/quicktime", "video/webm"})
	v.SetDefault("media.compression.video_share", 0.9)
	v.SetDefault("media.compression.audio_bitrate_kbps", 128)
	v.SetDefault("media.compression.min_bitrate_kbps", 250)
	v.SetDefault("media.compression.max_bitrate_kbps", 8000)
	v.SetDefault("media.compression.max_height", 1080)
	v.SetDefault("media.safety.frame_ratios", []float64{0.05, 0.2, 0.4, 0.6, 0.8, 0.95})
	v.SetDefault("media.safety.max_frame_dimension", 320)
	v.SetDefault("media.safety.min_pixels", 1024)
	v.SetDefault("media.safety.skin_threshold", 0.35)
	v.SetDefault("media.safety.porn_threshold", 0.6)
	v.SetDefault("media.safety.sexy_threshold", 0.8)
	v.SetDefault("media.safety.top_label_threshold", 0.8)
	v.SetDefault("media.safety.skin_min_y", 80)
	v.SetDefault("media.safety.skin_min_cb", 77)
	v.SetDefault("media.safety.skin_max_cb", 127)
	v.SetDefault("media.safety.skin_min_cr", 133)
	v.SetDefault("media.safety.skin_max_cr", 173)
	v.SetDefault("media.classifier.model", "nsfw-mobilenet-v2")
	v.SetDefault("media.classifier.top_k", 5)
	v.SetDefault("media.classifier.timeout", 5*time.Second)
	v.SetDefault("media.encoder.timeout", 2*time.Minute)
	v.SetDefault("media.ffmpeg.ffmpeg_path", "ffmpeg")
	v.SetDefault("media.ffmpeg.ffprobe_path", "ffprobe")

	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.limit", 5)
	v.SetDefault("rate_limit.window", 10*time.Minute)

	v.SetDefault("storage.key_prefix", "media")
	v.SetDefault("storage.upload_ttl", 5*time.Minute)
	v.SetDefault("storage.download_ttl", 24*time.Hour)

	v.SetDefault("kafka.topic", "moderation-audit")
}
