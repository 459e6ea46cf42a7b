// Package repo 管理参与统计的本地 Git 仓库列表。
//
// 主要功能：
//   - Scan: 递归扫描目录查找 Git 仓库
//   - Store: 已添加仓库的持久化存储
//   - CheckHead / CheckPermissions / CheckPerformance: doctor 诊断项
package repo
