package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config 서비스 전체 설정을 모아둔다.
type Config struct {
	Server     ServerConfig
	Counseling CounselingConfig
	Storage    StorageConfig
	CORS       CORSConfig
}

// Load 는 환경 변수에서 설정을 읽는다.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	counseling, err := loadCounselingConfig()
	if err != nil {
		return nil, err
	}

	storage, err := loadStorageConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Server:     server,
		Counseling: counseling,
		Storage:    storage,
		CORS:       loadCORSConfig(),
	}, nil
}

// ServerConfig HTTP 서비스 설정.
type ServerConfig struct {
	Addr string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "4000"
	}

	if strings.Contains(port, ":") {
		// ":4000" 이나 "127.0.0.1:4000" 형태도 허용한다.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// CounselingConfig 원격 상담 백엔드 설정.
type CounselingConfig struct {
	BaseURL string
	// UseBackend 가 false 면 모든 상담 호출이 폴백 생성기로 우회한다.
	// 명시적으로 true 일 때만 원격 백엔드를 사용한다.
	UseBackend bool
	Timeout    time.Duration
}

func loadCounselingConfig() (CounselingConfig, error) {
	useBackend, err := parseBoolEnv("USE_BACKEND", false)
	if err != nil {
		return CounselingConfig{}, err
	}

	timeoutSeconds := 10
	if override, err := parseOptionalIntEnv("COUNSELING_TIMEOUT"); err != nil {
		return CounselingConfig{}, err
	} else if override != nil {
		if *override < 1 {
			return CounselingConfig{}, fmt.Errorf("COUNSELING_TIMEOUT must be positive, got %d", *override)
		}
		timeoutSeconds = *override
	}

	return CounselingConfig{
		BaseURL:    getEnvOrDefault("COUNSELING_API_URL", "http://localhost:8000"),
		UseBackend: useBackend,
		Timeout:    time.Duration(timeoutSeconds) * time.Second,
	}, nil
}

// StorageConfig 로컬 영속 저장소 설정.
type StorageConfig struct {
	// Driver 는 memory, file, sqlite 중 하나.
	Driver string
	Path   string
}

func loadStorageConfig() (StorageConfig, error) {
	driver := strings.ToLower(getEnvOrDefault("STORAGE_DRIVER", "file"))
	switch driver {
	case "memory", "file", "sqlite":
	default:
		return StorageConfig{}, fmt.Errorf("invalid STORAGE_DRIVER value: %q", driver)
	}

	defaultPath := "data/maeum.json"
	if driver == "sqlite" {
		defaultPath = "data/maeum.db"
	}

	return StorageConfig{
		Driver: driver,
		Path:   getEnvOrDefault("STORAGE_PATH", defaultPath),
	}, nil
}

// CORSConfig 허용할 프론트엔드 origin 목록.
type CORSConfig struct {
	AllowedOrigins []string
}

func loadCORSConfig() CORSConfig {
	origins := []string{"http://localhost:3000"}
	if extra := strings.TrimSpace(os.Getenv("ALLOWED_ORIGINS")); extra != "" {
		for _, origin := range strings.Split(extra, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				origins = append(origins, origin)
			}
		}
	}
	return CORSConfig{AllowedOrigins: origins}
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

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}
