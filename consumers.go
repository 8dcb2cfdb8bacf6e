package fastdtw

// Warp resamples s (length N, the Y signal a path was solved against)
// into w (length N, caller-allocated) by following path forward. The
// walk advances its source/destination cursors before writing, so the
// trailing cells of w beyond the final write position are left
// untouched (spec §9b), and w[0] is written only by Up moves at the
// start of the path (they leave the destination cursor at 0); no other
// move writes it — callers that need a fully-defined result should
// zero-fill or otherwise pre-populate w before calling Warp.
func Warp[T any](path *Path, s, w []T) error {
	if path.Len() == 0 {
		return ErrEmptyPath
	}

	tSrc, tDst := 0, 0
	for _, pt := range path.All() {
		switch pt.Move {
		case Diagonal:
			tSrc++
			tDst++
		case Right:
			tDst++
		case Up:
			tSrc++
		case Stop:
			return nil
		}
		w[tDst] = s[tSrc]
	}
	return nil
}

// Disparity fills d (length N, caller-allocated) with the cumulative
// (Up count − Right count) along path, the signed per-sample deviation
// between the two axes — in a stereo row, the per-column horizontal
// shift. Like Warp, it writes only after advancing, so d[0] is written
// only by Up moves at the start of the path; otherwise it is left at
// whatever the caller initialized it to.
func Disparity(path *Path, d []float64) error {
	if path.Len() == 0 {
		return ErrEmptyPath
	}

	disp, t := 0.0, 0
	for _, pt := range path.All() {
		switch pt.Move {
		case Diagonal:
			t++
		case Right:
			t++
			disp--
		case Up:
			disp++
		case Stop:
			return nil
		}
		d[t] = disp
	}
	return nil
}
