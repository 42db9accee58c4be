package voice

// ResampleLinear changes a clip's playback speed by linearly interpolating
// samples onto a new grid. A factor above 1 plays faster (fewer samples),
// below 1 slower. The output has max(1, len(samples)/factor) samples.
// The factor must be positive.
func ResampleLinear(samples []float32, factor float64) []float32 {
	n := len(samples)
	if n == 0 {
		return nil
	}

	newLen := int(float64(n) / factor)
	if newLen < 1 {
		newLen = 1
	}

	out := make([]float32, newLen)
	if newLen == 1 {
		out[0] = samples[0]
		return out
	}

	step := float64(n-1) / float64(newLen-1)
	for i := range out {
		pos := float64(i) * step
		j := int(pos)
		if j >= n-1 {
			out[i] = samples[n-1]
			continue
		}
		frac := float32(pos - float64(j))
		out[i] = samples[j] + frac*(samples[j+1]-samples[j])
	}

	return out
}
