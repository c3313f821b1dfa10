package store

import (
	"bytes"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"image"
	"image/png"
	"math"

	"golang.org/x/image/draw"
)

// ihdrEnd is the offset just past the PNG signature and the IHDR chunk.
const ihdrEnd = 8 + 4 + 4 + 13 + 4

const metersPerInch = 0.0254

// EncodePNG flattens img onto white, encodes it as an opaque RGB PNG with
// best compression, and records dpi in a pHYs chunk.
func EncodePNG(img image.Image, dpi int) ([]byte, error) {
	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(&buf, flatten(img)); err != nil {
		return nil, err
	}
	return insertPHYs(buf.Bytes(), dpi)
}

// flatten composites img over an opaque white background.
func flatten(img image.Image) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Over)
	return dst
}

// insertPHYs places a pHYs chunk right after IHDR.
func insertPHYs(data []byte, dpi int) ([]byte, error) {
	if len(data) < ihdrEnd || string(data[12:16]) != "IHDR" {
		return nil, errors.New("png: missing IHDR chunk")
	}
	ppm := uint32(math.Round(float64(dpi) / metersPerInch))

	chunk := make([]byte, 0, 4+4+9+4)
	chunk = binary.BigEndian.AppendUint32(chunk, 9)
	chunk = append(chunk, "pHYs"...)
	chunk = binary.BigEndian.AppendUint32(chunk, ppm)
	chunk = binary.BigEndian.AppendUint32(chunk, ppm)
	chunk = append(chunk, 1) // unit: meter
	chunk = binary.BigEndian.AppendUint32(chunk, crc32.ChecksumIEEE(chunk[4:]))

	out := make([]byte, 0, len(data)+len(chunk))
	out = append(out, data[:ihdrEnd]...)
	out = append(out, chunk...)
	return append(out, data[ihdrEnd:]...), nil
}
