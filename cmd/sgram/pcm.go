package main

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
)

// decodePCM converts raw little-endian mono PCM to float32 samples.
// s16le samples keep their integer scale. NaN and Inf f32le samples are
// rejected.
func decodePCM(data []byte, encoding string) ([]float32, error) {
	switch encoding {
	case "s16le":
		if len(data)%2 != 0 {
			return nil, fmt.Errorf("s16le input has odd byte count %d", len(data))
		}
		pcm := make([]int16, len(data)/2)
		if err := binary.Read(bytes.NewReader(data), binary.LittleEndian, &pcm); err != nil {
			return nil, fmt.Errorf("decode s16le: %w", err)
		}
		out := make([]float32, len(pcm))
		for i, v := range pcm {
			out[i] = float32(v)
		}
		return out, nil

	case "f32le":
		if len(data)%4 != 0 {
			return nil, fmt.Errorf("f32le input byte count %d is not a multiple of 4", len(data))
		}
		out := make([]float32, len(data)/4)
		if err := binary.Read(bytes.NewReader(data), binary.LittleEndian, &out); err != nil {
			return nil, fmt.Errorf("decode f32le: %w", err)
		}
		for i, v := range out {
			if f := float64(v); math.IsNaN(f) || math.IsInf(f, 0) {
				return nil, fmt.Errorf("f32le sample %d is not finite: %v", i, v)
			}
		}
		return out, nil

	default:
		return nil, fmt.Errorf("unknown encoding %q", encoding)
	}
}

// splitFrames slices samples into frames of n samples starting every hop
// samples. A trailing partial frame is dropped. Frames share memory with
// samples.
func splitFrames(samples []float32, n, hop int) [][]float32 {
	if n <= 0 || hop <= 0 || len(samples) < n {
		return nil
	}

	frames := make([][]float32, 0, (len(samples)-n)/hop+1)
	for start := 0; start+n <= len(samples); start += hop {
		frames = append(frames, samples[start:start+n:start+n])
	}
	return frames
}
