package hal

import "image"

func rgb565(r, g, b uint8) uint16 {
	rr := uint16(r>>3) & 0x1F
	gg := uint16(g>>2) & 0x3F
	bb := uint16(b>>3) & 0x1F
	return (rr << 11) | (gg << 5) | bb
}

func rgb888From565(p uint16) (r, g, b uint8) {
	rr := (p >> 11) & 0x1F
	gg := (p >> 5) & 0x3F
	bb := p & 0x1F

	r = uint8((rr * 255) / 31)
	g = uint8((gg * 255) / 63)
	b = uint8((bb * 255) / 31)
	return r, g, b
}

// expandRGB565 converts little-endian RGB565 rows into dst.
func expandRGB565(dst *image.RGBA, src []byte, width, height, stride int) {
	for y := 0; y < height; y++ {
		row := y * stride
		out := y * dst.Stride
		for x := 0; x < width; x++ {
			off := row + x*2
			if off+1 >= len(src) {
				return
			}
			r, g, b := rgb888From565(uint16(src[off]) | uint16(src[off+1])<<8)
			j := out + x*4
			dst.Pix[j+0] = r
			dst.Pix[j+1] = g
			dst.Pix[j+2] = b
			dst.Pix[j+3] = 0xFF
		}
	}
}

// Snapshot copies a framebuffer into a new RGBA image.
func Snapshot(fb Framebuffer) *image.RGBA {
	if s, ok := fb.(interface{ snapshotRGBA() *image.RGBA }); ok {
		return s.snapshotRGBA()
	}
	img := image.NewRGBA(image.Rect(0, 0, fb.Width(), fb.Height()))
	if fb.Format() == PixelFormatRGB565 {
		expandRGB565(img, fb.Buffer(), fb.Width(), fb.Height(), fb.StrideBytes())
	}
	return img
}
