package tint

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	xdraw "golang.org/x/image/draw"
)

// TintConfig holds settings for batch tinting image files.
// Many fields have workable defaults; see each field.
type TintConfig struct {
	// Tint is the color images are pulled toward (in Oklab space)
	Tint Oklab

	// Amount is how far toward Tint each pixel moves, 0 - 1.
	// 0 leaves images untouched, 1 paints them flat.
	Amount float64

	// Scale optionally resizes output; 0 (or 1) keeps the input size
	Scale float64

	// Suffix appended to output file names ("_tinted" if unset)
	Suffix string
}

// TintImage pulls every pixel of an image toward the tint color by
// `amount` (0 - 1), mixing in Oklab space & preserving each pixel's
// alpha. Results are clamped back into the sRGB gamut.
func TintImage(in image.Image, tint Oklab, amount float64) *image.RGBA {
	amount = clamp01(amount)
	bnds := in.Bounds()
	out := image.NewRGBA(bnds)

	for y := bnds.Min.Y; y < bnds.Max.Y; y++ {
		for x := bnds.Min.X; x < bnds.Max.X; x++ {
			o := FromColor(in.At(x, y))

			target := tint
			target.Alpha = o.Alpha // tinting never touches alpha

			mixed := o.Lerp(target, amount).ClampChroma()
			out.Set(x, y, mixed.Color())
		}
	}

	return out
}

// TintFiles tints every .png in the given directory, writing each
// result alongside the input with the configured suffix. Returns the
// paths written. Already-suffixed files are skipped so re-runs don't
// tint their own output.
func TintFiles(dir string, cfg *TintConfig) ([]string, error) {
	if cfg == nil {
		cfg = &TintConfig{}
	}
	suffix := cfg.Suffix
	if suffix == "" {
		suffix = "_tinted"
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read dir %s", dir)
	}

	written := []string{}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".png") {
			continue
		}
		base := strings.TrimSuffix(name, ".png")
		if strings.HasSuffix(base, suffix) {
			continue
		}

		fpath := filepath.Join(dir, name)
		f, err := os.Open(fpath)
		if err != nil {
			return written, errors.Wrapf(err, "failed to open %s", fpath)
		}
		im, err := png.Decode(f)
		f.Close()
		if err != nil {
			return written, errors.Wrapf(err, "failed to decode %s", fpath)
		}

		var result image.Image = TintImage(im, cfg.Tint, cfg.Amount)
		if cfg.Scale > 0 && cfg.Scale != 1 {
			result = rescale(result, cfg.Scale)
		}

		outpath := filepath.Join(dir, base+suffix+".png")
		err = savePNG(outpath, result)
		if err != nil {
			return written, errors.Wrapf(err, "failed to write %s", outpath)
		}
		written = append(written, outpath)
	}

	return written, nil
}

// rescale resizes an image by the given factor
func rescale(in image.Image, scale float64) image.Image {
	bnds := in.Bounds()
	w := int(float64(bnds.Dx()) * scale)
	h := int(float64(bnds.Dy()) * scale)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), in, bnds, xdraw.Over, nil)
	return dst
}
