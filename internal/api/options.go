package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/planvista/topograph/internal/config"
	"github.com/planvista/topograph/pkg/builder"
	apperrors "github.com/planvista/topograph/pkg/errors"
)

// parseOptions maps query parameters onto builder options. Absent parameters
// keep the configured defaults.
//
// Recognized parameters:
//
//	datacenters=false  skip the datacenter level
//	clusters=false     skip the cluster level
//	normalize=false    keep raw display names
//	flat=true          flat placement instead of grouped (hardware only)
//	spacing=180        node spacing in surface units
//	columns=4          grid width for grouped placement
//	statuses=a,b       availability allow-list (hardware only)
func parseOptions(r *http.Request, layout config.LayoutConfig, hardware bool) (builder.Options, error) {
	opts := builder.DefaultOptions()
	opts.Columns = layout.Columns
	if hardware {
		opts.NodeSpacing = layout.HardwareSpacing
	} else {
		opts.NodeSpacing = layout.Spacing
	}

	q := r.URL.Query()

	var err error
	if opts.IncludeDatacenters, err = boolParam(q.Get("datacenters"), true); err != nil {
		return opts, apperrors.New(apperrors.ErrCodeInvalidOptions, "invalid datacenters parameter: %q", q.Get("datacenters"))
	}
	if opts.IncludeClusters, err = boolParam(q.Get("clusters"), true); err != nil {
		return opts, apperrors.New(apperrors.ErrCodeInvalidOptions, "invalid clusters parameter: %q", q.Get("clusters"))
	}
	if opts.NormalizeNames, err = boolParam(q.Get("normalize"), true); err != nil {
		return opts, apperrors.New(apperrors.ErrCodeInvalidOptions, "invalid normalize parameter: %q", q.Get("normalize"))
	}

	flat, err := boolParam(q.Get("flat"), false)
	if err != nil {
		return opts, apperrors.New(apperrors.ErrCodeInvalidOptions, "invalid flat parameter: %q", q.Get("flat"))
	}
	opts.GroupByLocation = !flat

	if raw := q.Get("spacing"); raw != "" {
		spacing, err := strconv.ParseFloat(raw, 64)
		if err != nil || spacing <= 0 {
			return opts, apperrors.New(apperrors.ErrCodeInvalidOptions, "invalid spacing parameter: %q", raw)
		}
		opts.NodeSpacing = spacing
	}

	if raw := q.Get("columns"); raw != "" {
		columns, err := strconv.Atoi(raw)
		if err != nil || columns < 1 {
			return opts, apperrors.New(apperrors.ErrCodeInvalidOptions, "invalid columns parameter: %q", raw)
		}
		opts.Columns = columns
	}

	if raw := q.Get("statuses"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				opts.IncludeStatuses = append(opts.IncludeStatuses, s)
			}
		}
	}

	return opts, nil
}

// boolParam parses a query flag, returning fallback for the empty string.
func boolParam(raw string, fallback bool) (bool, error) {
	if raw == "" {
		return fallback, nil
	}
	return strconv.ParseBool(raw)
}
