// Package logging 提供基于 zerolog 的结构化日志。
//
// 日志只写入 stderr，不会混入 stdout 上的图表输出。
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger 是全局日志实例。
var Logger zerolog.Logger

// Config 描述日志配置。
type Config struct {
	Level  string    // trace/debug/info/warn/error
	Format string    // console/json
	Output io.Writer // 默认 os.Stderr
}

// DefaultConfig 返回默认配置：warn 级别，控制台格式，输出到 stderr。
func DefaultConfig() Config {
	return Config{
		Level:  "warn",
		Format: "console",
		Output: os.Stderr,
	}
}

// Init 使用给定配置初始化全局日志。
func Init(cfg Config) error {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return err
	}

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "", "console":
		output = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: "15:04:05",
		}
	case "json":
	default:
		return fmt.Errorf("unsupported log format %q (supported: console, json)", cfg.Format)
	}

	zerolog.TimeFieldFormat = time.RFC3339
	Logger = zerolog.New(output).Level(level).With().Timestamp().Logger()
	return nil
}

// ParseLevel 将字符串转换为 zerolog 日志级别，空字符串视为 warn。
func ParseLevel(level string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	case "info":
		return zerolog.InfoLevel, nil
	case "", "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("unsupported log level %q", level)
	}
}

// Component 返回带 component 字段的子日志。
func Component(name string) zerolog.Logger {
	return Logger.With().Str("component", name).Logger()
}

func init() {
	_ = Init(DefaultConfig())
}
