// Package config 提供 git-monthly 的配置管理功能。
//
// 配置文件存储在 ~/.config/git-monthly/config.yaml，使用 YAML 格式。
// 支持的配置项包括高亮邮箱、统计月份数、柱宽和是否缩放。
package config
