// Package normalize reshapes raw indexer payloads into the stable response contract.
package normalize

import (
	"time"

	"github.com/yourorg/vault-analytics-api/internal/indexer"
	"github.com/yourorg/vault-analytics-api/internal/model"
)

// FeeHistory normalizes a raw fee-history payload. Fee and volume fields are
// renamed (quoteTokenFees to fees0, govTokenFees to fees1) and coerced to
// finite decimal strings; values that cannot be represented default to "0".
//
// When every point carries zero fees and zero volume and the upstream
// summary confirms no total, the result is flagged so the caller can render
// a "no fee activity" state instead of an empty chart.
func FeeHistory(vault model.Vault, r DateRange, resp *indexer.FeeHistoryResponse) model.FeeHistory {
	out := model.FeeHistory{
		Vault:              vault,
		Data:               make([]model.FeeHistoryPoint, 0, len(resp.Data)),
		TotalFees:          decimalOrZero(resp.Summary.TotalFeesUSD),
		StartDate:          echoBound(resp.Metadata.RequestedStartDate, r.Start),
		EndDate:            echoBound(resp.Metadata.RequestedEndDate, r.End),
		Token0Symbol:       resp.Token0Symbol,
		Token1Symbol:       resp.Token1Symbol,
		TriedExtendedRange: r.Extended,
	}

	allZeros := len(resp.Data) > 0
	for _, entry := range resp.Data {
		point := model.FeeHistoryPoint{
			Timestamp: entry.Timestamp,
			Date:      entry.Date,
			Fees0:     decimalOrZero(entry.QuoteTokenFees),
			Fees1:     decimalOrZero(entry.GovTokenFees),
			FeesUSD:   decimalOrZero(entry.FeesUSD),
		}
		// Volume fields stay optional: omitted upstream means omitted here,
		// not zero-filled.
		if v, ok := coerceDecimal(entry.Volume0); ok {
			point.Volume0 = v
		}
		if v, ok := coerceDecimal(entry.Volume1); ok {
			point.Volume1 = v
		}
		if v, ok := coerceDecimal(entry.VolumeUSD); ok {
			point.VolumeUSD = v
		}

		if !pointIsZero(point) {
			allZeros = false
		}
		out.Data = append(out.Data, point)
	}

	summaryZero := isZeroDecimal(out.TotalFees)
	out.AllZeros = allZeros && summaryZero
	out.HasNoFees = out.AllZeros || (len(resp.Data) == 0 && summaryZero)
	return out
}

// pointIsZero reports whether a normalized point carries no fee or volume activity.
func pointIsZero(p model.FeeHistoryPoint) bool {
	return isZeroDecimal(p.Fees0) && isZeroDecimal(p.Fees1) && isZeroDecimal(p.FeesUSD) &&
		isZeroDecimal(p.Volume0) && isZeroDecimal(p.Volume1) && isZeroDecimal(p.VolumeUSD)
}

// echoBound prefers the window the indexer says it answered for, falling
// back to the bound the service requested.
func echoBound(upstream string, requested time.Time) string {
	if upstream != "" {
		return upstream
	}
	return requested.UTC().Format(time.RFC3339)
}
