package ui

import "github.com/hubastard/hudlayer/engine/colors"

type Style struct {
	WindowPadding    [2]float32
	FramePadding     [2]float32
	ItemSpacing      [2]float32
	ItemInnerSpacing [2]float32

	Text          colors.Color
	TextDisabled  colors.Color
	WindowBg      colors.Color
	TitleBg       colors.Color
	TitleBgActive colors.Color
	FrameBg       colors.Color
	FrameHovered  colors.Color
	FrameActive   colors.Color
	CheckMark     colors.Color
	Button        colors.Color
	ButtonHovered colors.Color
	ButtonActive  colors.Color
	Separator     colors.Color
}

// DefaultStyle is a dark theme with a translucent window background.
// Nothing in it is pure black, which the overlay keys out.
func DefaultStyle() Style {
	accent := colors.Color{0.26, 0.59, 0.98, 1}
	return Style{
		WindowPadding:    [2]float32{8, 8},
		FramePadding:     [2]float32{4, 3},
		ItemSpacing:      [2]float32{8, 4},
		ItemInnerSpacing: [2]float32{4, 4},

		Text:          colors.Color{1, 1, 1, 1},
		TextDisabled:  colors.Color{0.5, 0.5, 0.5, 1},
		WindowBg:      colors.Color{0.06, 0.06, 0.06, 0.8},
		TitleBg:       colors.Color{0.04, 0.04, 0.04, 1},
		TitleBgActive: colors.Color{0.16, 0.29, 0.48, 1},
		FrameBg:       colors.Color{0.16, 0.29, 0.48, 0.54},
		FrameHovered:  accent.WithAlpha(0.4),
		FrameActive:   accent.WithAlpha(0.67),
		CheckMark:     accent,
		Button:        accent.WithAlpha(0.4),
		ButtonHovered: accent,
		ButtonActive:  colors.Color{0.06, 0.53, 0.98, 1},
		Separator:     colors.Color{0.43, 0.43, 0.5, 0.5},
	}
}
