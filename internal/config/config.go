package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rmncha/health-assistant/backend/internal/model/locale"
)

// Config 聚合整个服务的配置项。
type Config struct {
	Server    ServerConfig
	Assistant AssistantConfig
	Session   SessionConfig
	Store     StoreConfig
	Speech    SpeechConfig
}

// Load 从环境变量加载配置。
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	assistant, err := loadAssistantConfig()
	if err != nil {
		return nil, err
	}

	session, err := loadSessionConfig()
	if err != nil {
		return nil, err
	}

	store, err := loadStoreConfig()
	if err != nil {
		return nil, err
	}

	speech, err := loadSpeechConfig()
	if err != nil {
		return nil, err
	}

	return &Config{Server: server, Assistant: assistant, Session: session, Store: store, Speech: speech}, nil
}

// ServerConfig 描述 HTTP 服务配置。
type ServerConfig struct {
	Addr           string
	AllowedOrigins []string
}

// loadServerConfig 解析服务器监听地址与跨域白名单。
func loadServerConfig() (ServerConfig, error) {
	port := getEnvOrDefault("PORT", "8000")

	var addr string
	switch {
	case strings.Contains(port, " "):
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	case strings.Contains(port, ":"):
		// 允许用户直接传入 ":8000" 或 "127.0.0.1:8000"。
		addr = port
	default:
		if _, err := strconv.Atoi(port); err != nil {
			return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
		}
		addr = ":" + port
	}

	return ServerConfig{
		Addr:           addr,
		AllowedOrigins: parseListEnv("CORS_ALLOWED_ORIGINS", []string{"*"}),
	}, nil
}

// AssistantConfig 描述应答引擎配置。
type AssistantConfig struct {
	ResponseDelay   time.Duration
	DefaultLanguage locale.Language
}

func loadAssistantConfig() (AssistantConfig, error) {
	delay, err := parseDurationEnv("ASSISTANT_RESPONSE_DELAY", time.Second)
	if err != nil {
		return AssistantConfig{}, err
	}
	if delay < 0 {
		return AssistantConfig{}, fmt.Errorf("ASSISTANT_RESPONSE_DELAY must not be negative, got %s", delay)
	}

	lang := locale.Language(strings.ToLower(getEnvOrDefault("ASSISTANT_DEFAULT_LANGUAGE", string(locale.English))))
	if !lang.Valid() {
		return AssistantConfig{}, fmt.Errorf("invalid ASSISTANT_DEFAULT_LANGUAGE value %q: expected en or hi", lang)
	}

	return AssistantConfig{ResponseDelay: delay, DefaultLanguage: lang}, nil
}

// SessionConfig 描述会话保留策略。
type SessionConfig struct {
	TTL time.Duration
}

func loadSessionConfig() (SessionConfig, error) {
	ttl, err := parseDurationEnv("SESSION_TTL", 30*time.Minute)
	if err != nil {
		return SessionConfig{}, err
	}
	if ttl <= 0 {
		return SessionConfig{}, fmt.Errorf("SESSION_TTL must be positive, got %s", ttl)
	}
	return SessionConfig{TTL: ttl}, nil
}

// Store drivers.
const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

// StoreConfig 描述登记数据的存储方式。
type StoreConfig struct {
	Driver     string
	SQLitePath string
}

func loadStoreConfig() (StoreConfig, error) {
	driver := strings.ToLower(getEnvOrDefault("STORE_DRIVER", StoreMemory))
	if driver != StoreMemory && driver != StoreSQLite {
		return StoreConfig{}, fmt.Errorf("invalid STORE_DRIVER value %q: expected %s or %s", driver, StoreMemory, StoreSQLite)
	}
	return StoreConfig{
		Driver:     driver,
		SQLitePath: getEnvOrDefault("SQLITE_PATH", "data/registrations.db"),
	}, nil
}

// SpeechConfig 描述语音桥接配置
type SpeechConfig struct {
	Enabled bool
}

func loadSpeechConfig() (SpeechConfig, error) {
	enabled, err := parseBoolEnv("SPEECH_ENABLED", true)
	if err != nil {
		return SpeechConfig{}, err
	}
	return SpeechConfig{Enabled: enabled}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseBoolEnv(key string, defaultValue bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}

	val, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return val, nil
}

// parseDurationEnv 接受 Go duration 字符串，纯数字按毫秒处理。
func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}

	if ms, err := strconv.Atoi(raw); err == nil {
		return time.Duration(ms) * time.Millisecond, nil
	}

	val, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return val, nil
}

func parseListEnv(key string, defaultValue []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
