package relay

import (
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/goran-ethernal/SolanaRelay/internal/common"
)

// Query parameter bounds and defaults.
const (
	MinLimit = 1
	MaxLimit = 100

	MinBlocksAfterCreation     = 10
	MaxBlocksAfterCreation     = 10000
	DefaultBlocksAfterCreation = 1000

	MinDaysAgo     = 1
	MaxDaysAgo     = 30
	DefaultDaysAgo = 7

	DefaultTimeframe = "1h"

	millisPerDay = 24 * 60 * 60 * 1000
)

// Timeframes lists the candle sizes accepted by the OHLCV route.
var Timeframes = []string{"1m", "5m", "15m", "1h", "4h", "1d"}

// Param is an inbound query parameter a route accepts. Parse reads the raw value
// (empty when the caller did not send it) and writes the upstream query parameters.
type Param struct {
	// Name is the inbound query parameter name
	Name string

	// Description is shown in the route listing and API docs
	Description string

	parse func(raw string, now time.Time, out url.Values) error
}

// Apply validates raw and adds the resulting upstream parameters to out.
func (p Param) Apply(raw string, now time.Time, out url.Values) error {
	return p.parse(raw, now, out)
}

var (
	// ParamLimit bounds the page size of list routes.
	ParamLimit = Param{
		Name:        "limit",
		Description: "page size, 1-100",
		parse: func(raw string, _ time.Time, out url.Values) error {
			if raw == "" {
				return nil
			}

			limit, err := common.ParseIntInRange(raw, MinLimit, MaxLimit)
			if err != nil {
				return NewInvalidArgumentError("invalid limit: %v", err)
			}

			out.Set("limit", strconv.Itoa(limit))
			return nil
		},
	}

	// ParamCursor is an opaque continuation token passed through unmodified.
	ParamCursor = Param{
		Name:        "cursor",
		Description: "opaque pagination cursor from a previous response",
		parse: func(raw string, _ time.Time, out url.Values) error {
			if raw != "" {
				out.Set("cursor", raw)
			}
			return nil
		},
	}

	// ParamTimeframe selects the candle size of the OHLCV route.
	ParamTimeframe = Param{
		Name:        "timeframe",
		Description: "candle size: " + strings.Join(Timeframes, ", ") + " (default " + DefaultTimeframe + ")",
		parse: func(raw string, _ time.Time, out url.Values) error {
			if raw == "" {
				raw = DefaultTimeframe
			}

			if !slices.Contains(Timeframes, raw) {
				return NewInvalidArgumentError("invalid timeframe %q: must be one of %s",
					raw, strings.Join(Timeframes, ", "))
			}

			out.Set("timeframe", raw)
			return nil
		},
	}

	// ParamDaysAgo sizes the OHLCV time window ending now.
	ParamDaysAgo = Param{
		Name:        "days_ago",
		Description: "length of the candle window in days, 1-30 (default 7)",
		parse: func(raw string, now time.Time, out url.Values) error {
			days := DefaultDaysAgo
			if raw != "" {
				var err error
				days, err = common.ParseIntInRange(raw, MinDaysAgo, MaxDaysAgo)
				if err != nil {
					return NewInvalidArgumentError("invalid days_ago: %v", err)
				}
			}

			from, to := TimeWindow(days, now)
			out.Set("fromDate", strconv.FormatInt(from, 10))
			out.Set("toDate", strconv.FormatInt(to, 10))
			return nil
		},
	}

	// ParamBlocksAfterCreation bounds how many blocks after pair creation count as sniping.
	ParamBlocksAfterCreation = Param{
		Name:        "blocks_after_creation",
		Description: "blocks after pair creation to inspect, 10-10000 (default 1000)",
		parse: func(raw string, _ time.Time, out url.Values) error {
			blocks := DefaultBlocksAfterCreation
			if raw != "" {
				var err error
				blocks, err = common.ParseIntInRange(raw, MinBlocksAfterCreation, MaxBlocksAfterCreation)
				if err != nil {
					return NewInvalidArgumentError("invalid blocks_after_creation: %v", err)
				}
			}

			out.Set("blocksAfterCreation", strconv.Itoa(blocks))
			return nil
		},
	}
)

// TimeWindow returns the [from, to] window in Unix milliseconds covering the
// last daysAgo days up to now.
func TimeWindow(daysAgo int, now time.Time) (from, to int64) {
	to = now.UnixMilli()
	from = to - int64(daysAgo)*millisPerDay
	return from, to
}
