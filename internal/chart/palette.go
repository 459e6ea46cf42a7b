package chart

import "github.com/fatih/color"

// RGB 表示调色板中的一个 24 位颜色。
type RGB struct {
	R, G, B uint8
}

// palette 是柱状图按水平位置循环使用的彩虹色表。
// 每个纯色相重复一次，使过渡在终端上看起来更均匀。
var palette = [...]RGB{
	{255, 0, 0}, {255, 0, 0}, {255, 51, 0}, {255, 102, 0},
	{255, 153, 0}, {255, 204, 0}, {255, 255, 0}, {255, 255, 0},
	{212, 255, 0}, {170, 255, 0}, {128, 255, 0}, {85, 255, 0},
	{42, 255, 0}, {0, 255, 0}, {0, 255, 0}, {0, 255, 51},
	{0, 255, 102}, {0, 255, 153}, {0, 255, 204}, {0, 255, 255},
	{0, 255, 255}, {0, 204, 255}, {0, 153, 255}, {0, 102, 255},
	{0, 51, 255}, {0, 0, 255}, {0, 0, 255}, {42, 0, 255},
	{85, 0, 255}, {128, 0, 255}, {170, 0, 255}, {212, 0, 255},
	{255, 0, 255}, {255, 0, 255}, {255, 0, 204}, {255, 0, 153},
	{255, 0, 102}, {255, 0, 51},
}

// glyphColors 与 palette 一一对应，初始化后只读，可被并发调用共享。
// 强制开启颜色：是否输出转义序列由 Options.NoColor 决定，而不是 fatih/color 的终端探测。
var glyphColors = func() []*color.Color {
	out := make([]*color.Color, len(palette))
	for i, c := range palette {
		fc := color.RGB(int(c.R), int(c.G), int(c.B))
		fc.EnableColor()
		out[i] = fc
	}
	return out
}()

// PaletteSize 返回调色板的颜色数量。
func PaletteSize() int {
	return len(palette)
}

// PaletteAt 返回水平位置 x 对应的颜色（按调色板长度取模循环）。
func PaletteAt(x int) RGB {
	return palette[paletteIndex(x)]
}

func paletteIndex(x int) int {
	i := x % len(palette)
	if i < 0 {
		i += len(palette)
	}
	return i
}

// paint 为位置 pos 上的字符着色。
func paint(glyph string, pos int, noColor bool) string {
	if noColor {
		return glyph
	}
	return glyphColors[paletteIndex(pos)].Sprint(glyph)
}
