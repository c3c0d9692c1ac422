package render

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
)

// halfBlock draws the top pixel as foreground and the bottom as background.
const halfBlock = "▀"

// Draw paints the framebuffer onto a terminal screen. Each cell covers two
// framebuffer rows, so the framebuffer should be twice as tall as area.
func (fb *Framebuffer) Draw(scr uv.Screen, area uv.Rectangle) {
	for row := area.Min.Y; row < area.Max.Y; row++ {
		top := (row - area.Min.Y) * 2
		if top >= fb.Height {
			break
		}
		for col := area.Min.X; col < area.Max.X; col++ {
			x := col - area.Min.X
			if x >= fb.Width {
				break
			}
			scr.SetCell(col, row, &uv.Cell{
				Content: halfBlock,
				Width:   1,
				Style: uv.Style{
					Fg: cellColor(fb.Pixel(x, top)),
					Bg: cellColor(fb.Pixel(x, top+1)),
				},
			})
		}
	}
}

func cellColor(c Color) color.Color {
	return c.RGBA()
}
