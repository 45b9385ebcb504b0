package onnx

import (
	"image"
	"image/color"
	"math"
	"testing"
)

func TestSoftmaxSumsToOne(t *testing.T) {
	cases := [][]float32{
		{0, 0, 0},
		{1, 2, 3, 4, 5, 6},
		{-100, 0, 100},
		{3.5},
	}
	for _, logits := range cases {
		probs := Softmax(logits)
		if len(probs) != len(logits) {
			t.Fatalf("len(probs) = %d, want %d", len(probs), len(logits))
		}
		var sum float64
		for _, p := range probs {
			if p < 0 || p > 1 {
				t.Errorf("probability %v out of [0,1]", p)
			}
			sum += float64(p)
		}
		if math.Abs(sum-1.0) > 1e-5 {
			t.Errorf("sum = %v, want 1.0", sum)
		}
	}
}

func TestSoftmaxOrderingPreserved(t *testing.T) {
	probs := Softmax([]float32{0.1, 2.0, -1.0})
	if !(probs[1] > probs[0] && probs[0] > probs[2]) {
		t.Fatalf("ordering not preserved: %v", probs)
	}
}

func TestSoftmaxEmpty(t *testing.T) {
	if got := Softmax(nil); got != nil {
		t.Fatalf("Softmax(nil) = %v, want nil", got)
	}
}

func TestPreprocessShapeAndRange(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 64, 48))
	for y := 0; y < 48; y++ {
		for x := 0; x < 64; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 4), G: uint8(y * 5), B: 128, A: 255})
		}
	}

	const size = 224
	out := preprocess(img, size)
	if len(out) != 3*size*size {
		t.Fatalf("len(out) = %d, want %d", len(out), 3*size*size)
	}
	for i, v := range out {
		if v < -1.0001 || v > 1.0001 {
			t.Fatalf("out[%d] = %v, outside [-1,1]", i, v)
		}
	}
}

func TestPreprocessSolidColor(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			img.Set(x, y, color.RGBA{R: 255, G: 0, B: 127, A: 255})
		}
	}

	out := preprocess(img, 8)
	plane := 8 * 8
	if got := out[0]; math.Abs(float64(got-1.0)) > 1e-3 {
		t.Errorf("red channel = %v, want ~1.0", got)
	}
	if got := out[plane]; math.Abs(float64(got+1.0)) > 1e-3 {
		t.Errorf("green channel = %v, want ~-1.0", got)
	}
	if got := out[2*plane]; math.Abs(float64(got)) > 0.01 {
		t.Errorf("blue channel = %v, want ~0", got)
	}
}
