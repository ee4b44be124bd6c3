package helperOSS

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

func envInt(key string, def int) int {
	if v := getEnv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return def
}

func envFloat(key string, def float32) float32 {
	if v := getEnv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 32); err == nil && f >= 0 {
			return float32(f)
		}
	}
	return def
}

type WebPOptions struct {
	MaxW    int     // width bound (resize keeps aspect)
	MaxH    int     // height bound
	Quality float32 // lossy quality
}

func defaultWebPOptionsFromEnv() WebPOptions {
	return WebPOptions{
		MaxW:    envInt("IMAGE_WEBP_MAX_W", 1600),
		MaxH:    envInt("IMAGE_WEBP_MAX_H", 1600),
		Quality: envFloat("IMAGE_WEBP_QUALITY", 80),
	}
}

// decodeImage sniffs the MIME from the first 512 bytes; extension lies too
// often on staff uploads.
func decodeImage(all []byte) (image.Image, error) {
	if len(all) == 0 {
		return nil, fmt.Errorf("empty file")
	}
	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)

	switch {
	case strings.Contains(ct, "jpeg"):
		return jpeg.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "png"):
		return png.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "webp"):
		return webp.Decode(bytes.NewReader(all))
	default:
		return nil, fmt.Errorf("unsupported image format %q (use jpg/png/webp)", ct)
	}
}

func downscaleIfNeeded(src image.Image, maxW, maxH int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if (maxW <= 0 || w <= maxW) && (maxH <= 0 || h <= maxH) {
		return src
	}

	scaleW := float64(maxW) / float64(w)
	scaleH := float64(maxH) / float64(h)
	scale := scaleW
	if scaleH < scale {
		scale = scaleH
	}
	nw := int(float64(w) * scale)
	nh := int(float64(h) * scale)
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}

// ConvertToWebP: read -> decode -> resize (if needed) -> encode webp.
func ConvertToWebP(file multipart.File, filename string) ([]byte, error) {
	return ConvertToWebPWithOptions(file, filename, defaultWebPOptionsFromEnv())
}

func ConvertToWebPWithOptions(file multipart.File, _ string, opts WebPOptions) ([]byte, error) {
	all, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	img, err := decodeImage(all)
	if err != nil {
		return nil, err
	}

	img = downscaleIfNeeded(img, opts.MaxW, opts.MaxH)
	return webp.EncodeRGBA(img, opts.Quality)
}
