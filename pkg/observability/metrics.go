package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	metricPagesRendered = "portfolio.pages.rendered"
	metricLoadDuration  = "portfolio.load.duration.seconds"
	metricLoadFailures  = "portfolio.load.failures"
	metricRecordsLoaded = "portfolio.records.loaded"

	attrPage   = "page"
	attrSource = "source"
	attrStatus = "status"

	// StatusOK marks a load that produced data.
	StatusOK = "ok"
	// StatusError marks a load that fell back to its placeholder.
	StatusError = "error"
)

// loadBucketBoundaries covers local file reads through slow remote fetches.
var loadBucketBoundaries = []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}

// SiteMetrics holds the instruments recorded during a site build.
type SiteMetrics struct {
	pagesRendered metric.Int64Counter
	loadDuration  metric.Float64Histogram
	loadFailures  metric.Int64Counter
	recordsLoaded metric.Int64Counter
}

// NewSiteMetrics creates the build instruments from mt.
func NewSiteMetrics(mt metric.Meter) (*SiteMetrics, error) {
	pages, err := mt.Int64Counter(metricPagesRendered,
		metric.WithDescription("Pages written to the output directory"),
		metric.WithUnit("{page}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricPagesRendered, err)
	}

	duration, err := mt.Float64Histogram(metricLoadDuration,
		metric.WithDescription("Data source load duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(loadBucketBoundaries...),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricLoadDuration, err)
	}

	failures, err := mt.Int64Counter(metricLoadFailures,
		metric.WithDescription("Data source loads that failed"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricLoadFailures, err)
	}

	records, err := mt.Int64Counter(metricRecordsLoaded,
		metric.WithDescription("Records decoded from data sources"),
		metric.WithUnit("{record}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricRecordsLoaded, err)
	}

	return &SiteMetrics{
		pagesRendered: pages,
		loadDuration:  duration,
		loadFailures:  failures,
		recordsLoaded: records,
	}, nil
}

// RecordPage counts one rendered page. A nil receiver is a no-op.
func (sm *SiteMetrics) RecordPage(ctx context.Context, page string) {
	if sm == nil {
		return
	}

	sm.pagesRendered.Add(ctx, 1, metric.WithAttributes(attribute.String(attrPage, page)))
}

// RecordLoad records one data source load. A nil receiver is a no-op.
func (sm *SiteMetrics) RecordLoad(ctx context.Context, source string, records int, duration time.Duration, err error) {
	if sm == nil {
		return
	}

	status := StatusOK
	if err != nil {
		status = StatusError
	}

	sm.loadDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String(attrSource, source),
		attribute.String(attrStatus, status),
	))

	if err != nil {
		sm.loadFailures.Add(ctx, 1, metric.WithAttributes(attribute.String(attrSource, source)))

		return
	}

	sm.recordsLoaded.Add(ctx, int64(records), metric.WithAttributes(attribute.String(attrSource, source)))
}
