package reloadbench

import (
	"math"

	"github.com/tidwall/sjson"
)

// Result holds one elapsed-time sample in milliseconds per iteration,
// in run order.
type Result struct {
	Samples []float64
}

// Average returns the arithmetic mean of the samples, 0 if empty.
func (r *Result) Average() float64 {
	if len(r.Samples) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range r.Samples {
		sum += s
	}
	return sum / float64(len(r.Samples))
}

// Min returns the smallest sample, 0 if empty.
func (r *Result) Min() float64 {
	if len(r.Samples) == 0 {
		return 0
	}
	min := r.Samples[0]
	for _, s := range r.Samples[1:] {
		if s < min {
			min = s
		}
	}
	return min
}

// Max returns the largest sample, 0 if empty.
func (r *Result) Max() float64 {
	if len(r.Samples) == 0 {
		return 0
	}
	max := r.Samples[0]
	for _, s := range r.Samples[1:] {
		if s > max {
			max = s
		}
	}
	return max
}

// Stddev returns the population standard deviation of the samples.
func (r *Result) Stddev() float64 {
	if len(r.Samples) == 0 {
		return 0
	}
	avg := r.Average()
	sum := 0.0
	for _, s := range r.Samples {
		d := s - avg
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(r.Samples)))
}

// Report renders the result as a JSON document for machine consumption.
func (r *Result) Report() (string, error) {
	fields := []struct {
		path  string
		value interface{}
	}{
		{"iterations", len(r.Samples)},
		{"samples_ms", r.Samples},
		{"average_ms", r.Average()},
		{"min_ms", r.Min()},
		{"max_ms", r.Max()},
		{"stddev_ms", r.Stddev()},
	}

	json := "{}"
	var err error
	for _, f := range fields {
		json, err = sjson.Set(json, f.path, f.value)
		if err != nil {
			return "", err
		}
	}
	return json, nil
}
