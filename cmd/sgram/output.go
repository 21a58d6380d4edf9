package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"text/tabwriter"

	"github.com/cwbudde/algo-spectrograph/dsp/spectrum"
	"gonum.org/v1/gonum/floats"
	"gopkg.in/yaml.v3"
)

// report is the machine-readable result of a transform or tone run.
type report struct {
	SampleRate    float64    `json:"sample_rate" yaml:"sample_rate"`
	FrameLength   int        `json:"frame_length" yaml:"frame_length"`
	Hop           int        `json:"hop" yaml:"hop"`
	Backend       string     `json:"backend" yaml:"backend"`
	Window        string     `json:"window" yaml:"window"`
	Normalization string     `json:"normalization" yaml:"normalization"`
	FrequenciesHz []float64  `json:"frequencies_hz" yaml:"frequencies_hz"`
	Frames        []frameRow `json:"frames" yaml:"frames"`
}

type frameRow struct {
	Index       int       `json:"index" yaml:"index"`
	TimeSeconds float64   `json:"time_s" yaml:"time_s"`
	Peak        peakRow   `json:"peak" yaml:"peak"`
	MeanDB      float64   `json:"mean_db" yaml:"mean_db"`
	Shape       shapeRow  `json:"shape" yaml:"shape"`
	LogPowerDB  []float32 `json:"log_power_db" yaml:"log_power_db"`
}

type shapeRow struct {
	CentroidHz  float64 `json:"centroid_hz" yaml:"centroid_hz"`
	SpreadHz    float64 `json:"spread_hz" yaml:"spread_hz"`
	Flatness    float64 `json:"flatness" yaml:"flatness"`
	RolloffHz   float64 `json:"rolloff_hz" yaml:"rolloff_hz"`
	BandwidthHz float64 `json:"bandwidth_hz" yaml:"bandwidth_hz"`
}

type peakRow struct {
	Bin         int     `json:"bin" yaml:"bin"`
	FrequencyHz float64 `json:"frequency_hz" yaml:"frequency_hz"`
	LevelDB     float64 `json:"level_db" yaml:"level_db"`
}

func buildReport(cfg config, backend string, rows [][]float32) (report, error) {
	freqs, err := spectrum.Frequencies(cfg.FrameLength, cfg.SampleRate)
	if err != nil {
		return report{}, err
	}

	rep := report{
		SampleRate:    cfg.SampleRate,
		FrameLength:   cfg.FrameLength,
		Hop:           cfg.Hop,
		Backend:       backend,
		Window:        cfg.Window,
		Normalization: cfg.Normalization,
		FrequenciesHz: freqs,
		Frames:        make([]frameRow, len(rows)),
	}

	wide := make([]float64, len(freqs))
	for i, row := range rows {
		p, err := spectrum.FindPeak(row)
		if err != nil {
			return report{}, fmt.Errorf("frame %d: %w", i, err)
		}
		for k, v := range row {
			if !isFinite(float64(v)) {
				return report{}, fmt.Errorf("frame %d: bin %d level %v dB is not finite (input exceeds the float32 power range)", i, k, v)
			}
		}
		shape, err := spectrum.Describe(row, cfg.FrameLength, cfg.SampleRate)
		if err != nil {
			return report{}, fmt.Errorf("frame %d: %w", i, err)
		}
		if !isFinite(shape.Centroid, shape.Spread, shape.Flatness, shape.Rolloff, shape.Bandwidth) {
			return report{}, fmt.Errorf("frame %d: shape descriptors are not finite: %+v", i, shape)
		}
		for k, v := range row {
			wide[k] = float64(v)
		}

		rep.Frames[i] = frameRow{
			Index:       i,
			TimeSeconds: float64(i*cfg.Hop) / cfg.SampleRate,
			Peak: peakRow{
				Bin:         p.Bin,
				FrequencyHz: p.Frequency(cfg.FrameLength, cfg.SampleRate),
				LevelDB:     p.LevelDB,
			},
			MeanDB: floats.Sum(wide[:len(row)]) / float64(len(row)),
			Shape: shapeRow{
				CentroidHz:  shape.Centroid,
				SpreadHz:    shape.Spread,
				Flatness:    shape.Flatness,
				RolloffHz:   shape.Rolloff,
				BandwidthHz: shape.Bandwidth,
			},
			LogPowerDB: row,
		}
	}

	return rep, nil
}

func isFinite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func writeReport(w io.Writer, format string, rep report) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)

	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return err
		}
		return enc.Close()

	case "csv":
		return writeCSV(w, rep)

	default:
		return writeTable(w, rep)
	}
}

func writeCSV(w io.Writer, rep report) error {
	cw := csv.NewWriter(w)

	header := make([]string, 0, 2+len(rep.FrequenciesHz))
	header = append(header, "frame", "time_s")
	for _, f := range rep.FrequenciesHz {
		header = append(header, strconv.FormatFloat(f, 'f', -1, 64))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	record := make([]string, len(header))
	for _, fr := range rep.Frames {
		record = record[:0]
		record = append(record, strconv.Itoa(fr.Index), strconv.FormatFloat(fr.TimeSeconds, 'f', 6, 64))
		for _, v := range fr.LogPowerDB {
			record = append(record, strconv.FormatFloat(float64(v), 'f', 4, 32))
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func writeTable(w io.Writer, rep report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Frame\tTime [s]\tPeak Bin\tPeak [Hz]\tPeak [dB]\tMean [dB]\tCentroid [Hz]\tFlatness\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "-----\t--------\t--------\t---------\t---------\t---------\t-------------\t--------\n"); err != nil {
		return err
	}

	for _, fr := range rep.Frames {
		if _, err := fmt.Fprintf(tw, "%d\t%.4f\t%d\t%.1f\t%.2f\t%.2f\t%.1f\t%.4f\n",
			fr.Index,
			fr.TimeSeconds,
			fr.Peak.Bin,
			fr.Peak.FrequencyHz,
			fr.Peak.LevelDB,
			fr.MeanDB,
			fr.Shape.CentroidHz,
			fr.Shape.Flatness,
		); err != nil {
			return err
		}
	}

	return tw.Flush()
}
