package onnx

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
)

// preprocess resizes to size×size RGB and produces an NCHW float32 plane
// normalized the way the SigLIP processor does: rescale to [0,1], then
// (v-0.5)/0.5 per channel.
func preprocess(img image.Image, size int) []float32 {
	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.BiLinear.Scale(rgba, rgba.Bounds(), img, img.Bounds(), xdraw.Src, nil)

	plane := size * size
	out := make([]float32, 3*plane)
	for y := 0; y < size; y++ {
		row := rgba.Pix[y*rgba.Stride:]
		for x := 0; x < size; x++ {
			idx := y*size + x
			out[idx] = normalize(row[x*4])
			out[plane+idx] = normalize(row[x*4+1])
			out[2*plane+idx] = normalize(row[x*4+2])
		}
	}
	return out
}

func normalize(v uint8) float32 {
	return (float32(v)/255.0 - 0.5) / 0.5
}

// Softmax converts logits to a probability distribution.
func Softmax(logits []float32) []float32 {
	if len(logits) == 0 {
		return nil
	}
	maxLogit := logits[0]
	for _, v := range logits[1:] {
		if v > maxLogit {
			maxLogit = v
		}
	}
	out := make([]float32, len(logits))
	var sum float64
	for i, v := range logits {
		e := math.Exp(float64(v - maxLogit))
		out[i] = float32(e)
		sum += e
	}
	for i := range out {
		out[i] = float32(float64(out[i]) / sum)
	}
	return out
}
