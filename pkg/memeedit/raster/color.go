package raster

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ParseBackground は背景色文字列を解析します。"transparent"ならnilを返します
func ParseBackground(value string) (*color.RGBA, error) {
	value = strings.TrimSpace(value)
	if value == "" || value == "transparent" {
		return nil, nil
	}
	c, err := ParseColor(value)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ParseColor は色文字列（色名、#RGB、#RRGGBB）を解析します
func ParseColor(value string) (color.RGBA, error) {
	value = strings.ToLower(strings.TrimSpace(value))

	// 名前付き色
	if c, ok := namedColors[value]; ok {
		return c, nil
	}

	// 16進数色
	if strings.HasPrefix(value, "#") {
		return parseHexColor(value)
	}

	return color.RGBA{}, fmt.Errorf("unsupported color format: %s", value)
}

// parseHexColor は16進数色を解析します
func parseHexColor(hex string) (color.RGBA, error) {
	hex = strings.TrimPrefix(hex, "#")

	switch len(hex) {
	case 3:
		// #RGB
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	default:
		return color.RGBA{}, fmt.Errorf("invalid hex color length: %s", hex)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %s: %w", hex, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

// namedColors は名前付き色のマップです
var namedColors = map[string]color.RGBA{
	"black":   {0, 0, 0, 255},
	"white":   {255, 255, 255, 255},
	"red":     {255, 0, 0, 255},
	"green":   {0, 255, 0, 255},
	"blue":    {0, 0, 255, 255},
	"yellow":  {255, 255, 0, 255},
	"cyan":    {0, 255, 255, 255},
	"magenta": {255, 0, 255, 255},
	"gray":    {128, 128, 128, 255},
	"grey":    {128, 128, 128, 255},
}
