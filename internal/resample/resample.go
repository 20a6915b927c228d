// Package resample buckets inventory series down to fixed display sizes.
//
// This is a display-smoothing heuristic for charts, not statistically
// rigorous resampling: each output bucket takes the nearest source point by
// proportional index and is relabeled with a synthetic evenly-spaced
// timestamp. No interpolation is performed.
package resample

import (
	"math"
	"sort"
	"time"

	"github.com/yourorg/vault-analytics-api/internal/model"
)

// Timeframe is the display window selector sent by chart clients.
type Timeframe string

// Supported display timeframes
const (
	TimeframeDay   Timeframe = "24h"
	TimeframeWeek  Timeframe = "1W"
	TimeframeMonth Timeframe = "1M"
)

// Valid reports whether the selector is one of the supported timeframes.
func (t Timeframe) Valid() bool {
	switch t {
	case TimeframeDay, TimeframeWeek, TimeframeMonth:
		return true
	}
	return false
}

// Buckets returns the output series length for the timeframe.
func (t Timeframe) Buckets() int {
	switch t {
	case TimeframeDay:
		return 12
	case TimeframeWeek:
		return 21
	case TimeframeMonth:
		return 30
	}
	return 0
}

// Duration returns the wall-clock span the timeframe covers.
func (t Timeframe) Duration() time.Duration {
	switch t {
	case TimeframeDay:
		return 24 * time.Hour
	case TimeframeWeek:
		return 7 * 24 * time.Hour
	case TimeframeMonth:
		return 30 * 24 * time.Hour
	}
	return 0
}

// Inventory resamples an inventory series to the timeframe's bucket count.
//
// Points are sorted ascending by timestamp first. A single source point is
// replicated across all buckets with synthetic timestamps spanning the
// timeframe duration ending at the source timestamp. Otherwise each bucket
// picks the nearest source point by proportional index and is relabeled
// with a synthetic timestamp evenly spaced between the first and last
// source timestamps. The input slice is not modified.
func Inventory(points []model.InventoryPoint, tf Timeframe) []model.InventoryPoint {
	buckets := tf.Buckets()
	if buckets == 0 || len(points) == 0 {
		return nil
	}

	src := make([]model.InventoryPoint, len(points))
	copy(src, points)
	sort.Slice(src, func(i, j int) bool { return src[i].Timestamp < src[j].Timestamp })

	out := make([]model.InventoryPoint, buckets)

	if len(src) == 1 {
		end := src[0].Timestamp
		start := end - int64(tf.Duration()/time.Second)
		for i := 0; i < buckets; i++ {
			point := src[0]
			point.Timestamp = syntheticTimestamp(start, end, i, buckets)
			out[i] = point
		}
		return out
	}

	start := src[0].Timestamp
	end := src[len(src)-1].Timestamp
	for i := 0; i < buckets; i++ {
		point := src[nearestIndex(i, buckets, len(src))]
		point.Timestamp = syntheticTimestamp(start, end, i, buckets)
		out[i] = point
	}
	return out
}

// syntheticTimestamp spaces bucket i of n evenly across [start, end].
func syntheticTimestamp(start, end int64, i, n int) int64 {
	if n == 1 {
		return end
	}
	return start + (end-start)*int64(i)/int64(n-1)
}

// nearestIndex maps output bucket i of n onto the nearest of srcLen source
// points by proportional position.
func nearestIndex(i, n, srcLen int) int {
	if n == 1 {
		return srcLen - 1
	}
	idx := int(math.Round(float64(i) * float64(srcLen-1) / float64(n-1)))
	if idx < 0 {
		return 0
	}
	if idx >= srcLen {
		return srcLen - 1
	}
	return idx
}
