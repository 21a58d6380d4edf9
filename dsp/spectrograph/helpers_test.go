package spectrograph

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/cwbudde/algo-spectrograph/dsp/fftengine"
)

const goldenPath = "testdata/sine_1khz_8khz_n128.json"

type goldenFixture struct {
	Version       int       `json:"version"`
	SampleRate    float64   `json:"sample_rate"`
	ToneHz        float64   `json:"tone_hz"`
	Amplitude     float64   `json:"amplitude"`
	FrameLength   int       `json:"frame_length"`
	Window        string    `json:"window"`
	Normalization string    `json:"normalization"`
	LogPowerDB    []float64 `json:"log_power_db"`
}

func loadGolden(t testing.TB) goldenFixture {
	t.Helper()

	data, err := os.ReadFile(filepath.FromSlash(goldenPath))
	if err != nil {
		t.Fatalf("read golden fixture: %v", err)
	}

	var fx goldenFixture
	if err := json.Unmarshal(data, &fx); err != nil {
		t.Fatalf("decode golden fixture: %v", err)
	}
	if fx.Version != 1 || len(fx.LogPowerDB) != fx.FrameLength/2+1 {
		t.Fatalf("unexpected golden fixture: version=%d frame=%d bins=%d", fx.Version, fx.FrameLength, len(fx.LogPowerDB))
	}
	return fx
}

var errEngineBoom = errors.New("engine boom")

// stubEngine is a fake FFT engine with a configurable size, failure and
// close counter.
type stubEngine struct {
	n        int
	fail     bool
	closeErr error
	closed   *int
}

func (e *stubEngine) Len() int { return e.n }

func (e *stubEngine) Forward(dst, src []complex64) error {
	if e.fail {
		return errEngineBoom
	}
	copy(dst, src)
	return nil
}

func (e *stubEngine) Close() error {
	if e.closed != nil {
		*e.closed++
	}
	return e.closeErr
}

func stubFactory(eng *stubEngine) fftengine.Factory {
	return func(n int) (fftengine.Engine, error) {
		if eng.n == 0 {
			eng.n = n
		}
		return eng, nil
	}
}

// countingEngine wraps a real engine and counts Close calls.
type countingEngine struct {
	fftengine.Engine
	closed *int
}

func (e countingEngine) Close() error {
	*e.closed++
	return nil
}

// countingFactory builds gonum engines and counts how many it created and
// how many were closed.
func countingFactory(created, closed *int) fftengine.Factory {
	return func(n int) (fftengine.Engine, error) {
		eng, err := fftengine.Gonum(n)
		if err != nil {
			return nil, err
		}
		*created++
		return countingEngine{Engine: eng, closed: closed}, nil
	}
}

func sizeStr(n int) string {
	return fmt.Sprintf("n=%d", n)
}
