package export

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/go-pdf/fpdf"
)

// pageFit is an image's placement on a PDF page in millimeters.
type pageFit struct {
	X, Y, W, H float64
}

// fitPage scales an image onto a page: fit to width when the scaled height
// fits, otherwise fit to height and center horizontally.
func fitPage(imgW, imgH, pageW, pageH float64) pageFit {
	w := pageW
	h := imgH * (pageW / imgW)
	if h <= pageH {
		return pageFit{X: 0, Y: 0, W: w, H: h}
	}
	h = pageH
	w = imgW * (pageH / imgH)
	return pageFit{X: (pageW - w) / 2, Y: 0, W: w, H: h}
}

// assemblePDF lays one captured view per landscape A4 page.
func assemblePDF(captures [][]byte) ([]byte, error) {
	doc := fpdf.New("L", "mm", "A4", "")
	pageW, pageH := doc.GetPageSize()

	for i, capture := range captures {
		img, err := png.DecodeConfig(bytes.NewReader(capture))
		if err != nil {
			return nil, fmt.Errorf("decode capture %d: %w", i, err)
		}

		doc.AddPage()
		name := fmt.Sprintf("capture-%d", i)
		opts := fpdf.ImageOptions{ImageType: "PNG"}
		doc.RegisterImageOptionsReader(name, opts, bytes.NewReader(capture))

		fit := fitPage(float64(img.Width), float64(img.Height), pageW, pageH)
		doc.ImageOptions(name, fit.X, fit.Y, fit.W, fit.H, false, opts, 0, "")
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
