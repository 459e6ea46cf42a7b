// git-monthly 汇总本地多个 Git 仓库的提交记录，按月以彩色柱状图展示。
package main

import (
	"git-monthly/cmd"
)

func main() {
	cmd.Execute()
}
