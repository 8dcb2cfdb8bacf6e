// Command stereowarp aligns the rows of a pair of stereo BMP images with
// fastdtw and writes out the disparity-warped left image plus a grayscale
// disparity map, one row at a time.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"math"
	"os"

	"golang.org/x/image/bmp"

	"github.com/katalvlaran/fastdtw"
	"github.com/katalvlaran/fastdtw/downsamplefn"
	"github.com/katalvlaran/fastdtw/lossfn"
)

func main() {
	left := flag.String("left", "", "path to the left-eye BMP image")
	right := flag.String("right", "", "path to the right-eye BMP image")
	warpedOut := flag.String("warped", "warped.bmp", "output path for the disparity-warped left image")
	dispOut := flag.String("disparity", "disparity.bmp", "output path for the grayscale disparity map")
	downsampleLimit := flag.Int("downsample-limit", -1, "max downsample levels per row (-1 = unlimited)")
	flag.Parse()

	if *left == "" || *right == "" {
		fmt.Fprintln(os.Stderr, "usage: stereowarp -left=<bmp> -right=<bmp> [-warped=out.bmp] [-disparity=out.bmp]")
		os.Exit(2)
	}

	if err := run(*left, *right, *warpedOut, *dispOut, *downsampleLimit); err != nil {
		log.Fatalf("stereowarp: %v", err)
	}
}

func run(leftPath, rightPath, warpedPath, dispPath string, downsampleLimit int) error {
	leftImg, err := loadBMP(leftPath)
	if err != nil {
		return fmt.Errorf("loading left image: %w", err)
	}
	rightImg, err := loadBMP(rightPath)
	if err != nil {
		return fmt.Errorf("loading right image: %w", err)
	}

	bounds := leftImg.Bounds()
	if rightImg.Bounds().Size() != bounds.Size() {
		return fmt.Errorf("image size mismatch: left=%v right=%v", bounds.Size(), rightImg.Bounds().Size())
	}
	width, height := bounds.Dx(), bounds.Dy()

	opts := fastdtw.DefaultOptions()
	opts.DownsampleLimit = downsampleLimit

	solver, err := fastdtw.New(width, downsamplefn.MeanVector, lossfn.Euclidean, opts)
	if err != nil {
		return fmt.Errorf("constructing solver: %w", err)
	}

	warped := image.NewRGBA(bounds)
	disparity := image.NewGray(bounds)

	leftRow := make([][]float64, width)
	rightRow := make([][]float64, width)
	warpedRow := make([][]float64, width)
	dispRow := make([]float64, width)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		extractRow(leftImg, y, bounds.Min.X, leftRow)
		extractRow(rightImg, y, bounds.Min.X, rightRow)

		path, err := solver.Solve(leftRow, rightRow)
		if err != nil {
			return fmt.Errorf("solving row %d: %w", y, err)
		}

		for i := range warpedRow {
			warpedRow[i] = leftRow[0] // fallback for any index the walk never reaches
		}
		if err := fastdtw.Warp(path, leftRow, warpedRow); err != nil {
			return fmt.Errorf("warping row %d: %w", y, err)
		}
		if err := fastdtw.Disparity(path, dispRow); err != nil {
			return fmt.Errorf("computing disparity for row %d: %w", y, err)
		}

		writeRow(warped, y, bounds.Min.X, warpedRow)
		writeDisparityRow(disparity, y, bounds.Min.X, dispRow, width)
	}

	if err := saveBMP(warpedPath, warped); err != nil {
		return fmt.Errorf("saving warped image: %w", err)
	}
	if err := saveBMP(dispPath, disparity); err != nil {
		return fmt.Errorf("saving disparity image: %w", err)
	}
	return nil
}

func loadBMP(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return bmp.Decode(f)
}

func saveBMP(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return bmp.Encode(f, img)
}

// extractRow fills row with the image's pixels at height y, normalized to
// [0,1] per channel so Euclidean loss operates on comparable scales
// regardless of the source bit depth.
func extractRow(img image.Image, y, minX int, row [][]float64) {
	for x := range row {
		r, g, b, _ := img.At(minX+x, y).RGBA()
		row[x] = []float64{
			float64(r) / 0xffff,
			float64(g) / 0xffff,
			float64(b) / 0xffff,
		}
	}
}

func writeRow(img *image.RGBA, y, minX int, row [][]float64) {
	for x, px := range row {
		img.Set(minX+x, y, color.RGBA{
			R: clamp8(px[0]),
			G: clamp8(px[1]),
			B: clamp8(px[2]),
			A: 0xff,
		})
	}
}

// writeDisparityRow renders the signed per-column shift as a centered
// grayscale band: 128 is zero disparity, brighter is rightward shift.
func writeDisparityRow(img *image.Gray, y, minX int, disparity []float64, width int) {
	const scale = 255.0 / float64(8) // a shift of +-4 columns spans the full range
	for x := 0; x < width; x++ {
		v := 128 + disparity[x]*scale
		img.SetGray(minX+x, y, color.Gray{Y: clampByte(v)})
	}
}

func clamp8(v float64) uint8 {
	return clampByte(v * 255)
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(math.Round(v))
}
