package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// AppConfig 应用配置
type AppConfig struct {
	Server ServerConfig `toml:"server"`
	Data   DataConfig   `toml:"data"`
	Goals  GoalsConfig  `toml:"goals"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// DataConfig 数据配置
type DataConfig struct {
	DataDir string `toml:"data_dir"`
}

// GoalsConfig 周目标存储配置
type GoalsConfig struct {
	Driver string `toml:"driver"` // sqlite | mongo | redis | memory

	MongoURI      string `toml:"mongo_uri"`
	MongoDatabase string `toml:"mongo_database"`

	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
}

// LoadConfigInfo 配置加载元信息
type LoadConfigInfo struct {
	PortSpecified bool
}

// DefaultConfig 默认配置
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    20274,
			DevMode: false,
		},
		Data: DataConfig{
			DataDir: "data",
		},
		Goals: GoalsConfig{
			Driver:        "sqlite",
			MongoURI:      "mongodb://localhost:27017",
			MongoDatabase: "tablero",
			RedisAddr:     "localhost:6379",
		},
	}
}

func isPortSpecifiedInToml(data []byte) bool {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return false
	}

	serverAny, ok := raw["server"]
	if !ok {
		return false
	}

	serverMap, ok := serverAny.(map[string]any)
	if !ok {
		return false
	}

	_, ok = serverMap["port"]
	return ok
}

// GetExeDir 获取可执行文件所在目录
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfigWithInfo 从 config.toml 加载配置并返回元信息
func LoadConfigWithInfo() (*AppConfig, LoadConfigInfo, error) {
	info := LoadConfigInfo{}
	config := DefaultConfig()

	exeDir, err := GetExeDir()
	if err != nil {
		// 无法获取可执行文件目录，使用当前目录
		exeDir = "."
	}

	configPath := filepath.Join(exeDir, "config.toml")

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// 配置文件不存在，使用默认配置
			applyEnvOverrides(config)
			return config, info, nil
		}
		return nil, info, err
	}

	info.PortSpecified = isPortSpecifiedInToml(data)

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, info, err
	}

	applyEnvOverrides(config)

	return config, info, nil
}

// applyEnvOverrides 环境变量覆盖（用于 E2E / 容器运行，.env 由 main 先行加载）
func applyEnvOverrides(config *AppConfig) {
	if v := os.Getenv("TABLERO_GOALS_DRIVER"); v != "" {
		config.Goals.Driver = v
	}
	if v := os.Getenv("TABLERO_MONGO_URI"); v != "" {
		config.Goals.MongoURI = v
	}
	if v := os.Getenv("TABLERO_MONGO_DATABASE"); v != "" {
		config.Goals.MongoDatabase = v
	}
	if v := os.Getenv("TABLERO_REDIS_ADDR"); v != "" {
		config.Goals.RedisAddr = v
	}
	if v := os.Getenv("TABLERO_REDIS_PASSWORD"); v != "" {
		config.Goals.RedisPassword = v
	}
	if v := os.Getenv("TABLERO_REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.Goals.RedisDB = n
		}
	}
}

// LoadConfig 从 config.toml 加载配置
// 配置文件位于可执行文件同目录下
func LoadConfig() (*AppConfig, error) {
	config, _, err := LoadConfigWithInfo()
	return config, err
}

// EnsureDataDir 确保数据目录存在
// 数据目录位于可执行文件同目录下
func EnsureDataDir(config *AppConfig) (string, error) {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	dataDir := filepath.Join(exeDir, config.Data.DataDir)

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}

	return dataDir, nil
}
