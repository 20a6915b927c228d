package normalize

import (
	"math"
	"sort"
	"strconv"

	"github.com/yourorg/vault-analytics-api/internal/indexer"
	"github.com/yourorg/vault-analytics-api/internal/model"
)

// PriceImpact flattens the upstream buyImpacts/sellImpacts maps into one
// point per (timestamp, size, direction). Impact values are taken as
// absolute fractions; entries that are non-numeric or non-finite are
// skipped, never zero-filled. Output ordering is deterministic: entries in
// upstream order, sizes ascending, buys before sells.
func PriceImpact(vault model.Vault, tradeSize string, resp *indexer.PriceImpactResponse) model.PriceImpact {
	out := model.PriceImpact{
		Vault:     vault,
		TradeSize: tradeSize,
		Data:      make([]model.PriceImpactPoint, 0, len(resp.Data)*2),
	}

	for _, entry := range resp.Data {
		out.Data = append(out.Data, flattenImpacts(entry.Timestamp, entry.BuyImpacts, model.DirectionBuy)...)
		out.Data = append(out.Data, flattenImpacts(entry.Timestamp, entry.SellImpacts, model.DirectionSell)...)
	}
	return out
}

func flattenImpacts(timestamp int64, impacts map[string]any, direction string) []model.PriceImpactPoint {
	if len(impacts) == 0 {
		return nil
	}

	points := make([]model.PriceImpactPoint, 0, len(impacts))
	for _, size := range sortedSizeLabels(impacts) {
		fraction, ok := coerceFloat(impacts[size])
		if !ok {
			continue
		}
		percent := math.Abs(fraction)
		points = append(points, model.PriceImpactPoint{
			Timestamp:          timestamp,
			TradeSize:          size,
			PriceImpactPercent: percent,
			PriceImpactBps:     percent * 100,
			Direction:          direction,
		})
	}
	return points
}

// sortedSizeLabels orders trade-size labels numerically, with labels that
// don't parse sorted lexically after the numeric ones.
func sortedSizeLabels(impacts map[string]any) []string {
	labels := make([]string, 0, len(impacts))
	for label := range impacts {
		labels = append(labels, label)
	}

	sort.Slice(labels, func(i, j int) bool {
		a, aErr := strconv.ParseFloat(labels[i], 64)
		b, bErr := strconv.ParseFloat(labels[j], 64)
		switch {
		case aErr == nil && bErr == nil:
			if a != b {
				return a < b
			}
			return labels[i] < labels[j]
		case aErr == nil:
			return true
		case bErr == nil:
			return false
		default:
			return labels[i] < labels[j]
		}
	})
	return labels
}
