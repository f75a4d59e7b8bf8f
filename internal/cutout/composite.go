package cutout

import (
	"image"
)

// pasteMasked pastes src onto dst at the given offset using src's own
// alpha as mask. Every channel, alpha included, is blended as
// dst*(255-a) + src*a over 255. On a transparent canvas this leaves a
// soft-edge pixel with alpha a*a/255 and darkened colour.
func pasteMasked(dst, src *image.NRGBA, at image.Point) {
	sb := src.Bounds()
	r := sb.Sub(sb.Min).Add(at).Intersect(dst.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		si := src.PixOffset(sb.Min.X+r.Min.X-at.X, sb.Min.Y+y-at.Y)
		di := dst.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x, si, di = x+1, si+4, di+4 {
			m := uint32(src.Pix[si+3])
			if m == 0 {
				continue
			}
			for c := 0; c < 4; c++ {
				dst.Pix[di+c] = blend(dst.Pix[di+c], src.Pix[si+c], m)
			}
		}
	}
}

func blend(d, s uint8, m uint32) uint8 {
	return div255(uint32(d)*(255-m) + uint32(s)*m)
}

// div255 divides by 255 with rounding, exact for products of two bytes.
func div255(v uint32) uint8 {
	t := v + 128
	return uint8(((t >> 8) + t) >> 8)
}
