package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// AppConfig 应用配置
type AppConfig struct {
	Server     ServerConfig     `toml:"server"`
	Data       DataConfig       `toml:"data"`
	References ReferencesConfig `toml:"references"`
	Simulation SimulationConfig `toml:"simulation"`
}

// ServerConfig 本地看板 API 配置
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// DataConfig 数据目录与输出配置
type DataConfig struct {
	DataDir     string `toml:"data_dir"`     // 年度文件与参照名单所在目录
	FilePrefix  string `toml:"file_prefix"`  // 年度文件名前缀
	CleanOutput string `toml:"clean_output"` // 清洗结果文件名
}

// ReferencesConfig 参照名单配置
//
// 三个路径均相对数据目录解析；OPT/CPT 缺失时是否在线抓取由 enable_fetch 决定。
type ReferencesConfig struct {
	FortunePath string `toml:"fortune_path"`
	OPTPath     string `toml:"opt_path"`
	CPTPath     string `toml:"cpt_path"`
	EnableFetch bool   `toml:"enable_fetch"`
	OPTURL      string `toml:"opt_url"` // 为空使用内置来源
	CPTURL      string `toml:"cpt_url"`
}

// SimulationConfig 默认模拟参数
type SimulationConfig struct {
	Alpha          float64 `toml:"alpha"`
	ElasticityLow  float64 `toml:"elasticity_low"`
	ElasticityHigh float64 `toml:"elasticity_high"`
}

// LoadConfigInfo 配置加载元信息
type LoadConfigInfo struct {
	PortSpecified bool
}

// DefaultConfig 默认配置
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    20470,
			DevMode: false,
		},
		Data: DataConfig{
			DataDir:     "data",
			FilePrefix:  "h1b_datahubexport",
			CleanOutput: "clean_h1b_data.csv",
		},
		References: ReferencesConfig{
			FortunePath: "fortune500_opt_companies_2024.csv",
			OPTPath:     "opt_employers_scraped.csv",
			CPTPath:     "cpt_employers_day1cptuniversities.csv",
			EnableFetch: false,
		},
		Simulation: SimulationConfig{
			Alpha:          0.2,
			ElasticityLow:  -0.5,
			ElasticityHigh: -0.2,
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
// 配置文件位于可执行文件同目录下，不存在时使用默认配置
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
			return config, info, nil
		}
		return nil, info, err
	}

	info.PortSpecified = isPortSpecifiedInToml(data)

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, info, err
	}

	return config, info, nil
}

// LoadConfig 从 config.toml 加载配置
func LoadConfig() (*AppConfig, error) {
	config, _, err := LoadConfigWithInfo()
	return config, err
}

// EnsureDataDir 确保数据目录存在并返回绝对路径
func EnsureDataDir(config *AppConfig) (string, error) {
	dataDir := config.Data.DataDir
	if !filepath.IsAbs(dataDir) {
		abs, err := filepath.Abs(dataDir)
		if err != nil {
			return "", err
		}
		dataDir = abs
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}
	return dataDir, nil
}

// ReferencePath 参照名单文件的完整路径（相对路径以数据目录为基准）
func ReferencePath(config *AppConfig, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(config.Data.DataDir, path)
}

// CleanOutputPath 清洗结果文件的完整路径
func CleanOutputPath(config *AppConfig) string {
	return filepath.Join(config.Data.DataDir, config.Data.CleanOutput)
}
