// Package telemetry configures OpenTelemetry exporters for the pawswap tools
// and exposes helpers for instrumenting module operations.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	promclient "github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	metricsdk "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
)

const (
	serviceName    = "pawswap"
	serviceVersion = "0.1.0"
)

// Config selects the exporters a Provider starts. With no OTLP endpoint,
// spans go to the global no-op tracer.
type Config struct {
	OTLPEndpoint string
	SampleRate   float64
	Environment  string

	// Prometheus exports OTel instruments through a Prometheus registry.
	Prometheus bool
	// Registerer defaults to the Prometheus default registerer.
	Registerer promclient.Registerer
}

// Validate checks the endpoint and the sample rate.
func (c Config) Validate() error {
	if c.SampleRate < 0 || c.SampleRate > 1 {
		return fmt.Errorf("sample rate %v outside [0, 1]", c.SampleRate)
	}
	if c.OTLPEndpoint == "" {
		return nil
	}
	if _, _, err := splitEndpoint(c.OTLPEndpoint); err != nil {
		return err
	}
	return nil
}

// Provider owns the SDK tracer and meter providers it installed globally.
type Provider struct {
	traces  *tracesdk.TracerProvider
	metrics *metricsdk.MeterProvider
}

// NewProvider starts the exporters cfg asks for. An empty config yields a
// provider whose Meter falls back to the global one.
func NewProvider(ctx context.Context, cfg Config) (*Provider, error) {
	p := &Provider{}
	if cfg.OTLPEndpoint == "" && !cfg.Prometheus {
		return p, nil
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid telemetry config: %w", err)
	}

	res, err := resource.New(ctx, resource.WithAttributes(
		semconv.ServiceName(serviceName),
		semconv.ServiceVersion(serviceVersion),
		attribute.String("environment", cfg.Environment),
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	if cfg.OTLPEndpoint != "" {
		if p.traces, err = newTracerProvider(ctx, cfg, res); err != nil {
			return nil, err
		}
		otel.SetTracerProvider(p.traces)
	}
	if cfg.Prometheus {
		if p.metrics, err = newMeterProvider(cfg, res); err != nil {
			return nil, errors.Join(err, p.Shutdown(ctx))
		}
		otel.SetMeterProvider(p.metrics)
	}
	return p, nil
}

func newTracerProvider(ctx context.Context, cfg Config, res *resource.Resource) (*tracesdk.TracerProvider, error) {
	host, insecure, err := splitEndpoint(cfg.OTLPEndpoint)
	if err != nil {
		return nil, err
	}
	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(host)}
	if insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP exporter: %w", err)
	}

	return tracesdk.NewTracerProvider(
		tracesdk.WithBatcher(exporter),
		tracesdk.WithResource(res),
		tracesdk.WithSampler(tracesdk.ParentBased(tracesdk.TraceIDRatioBased(cfg.SampleRate))),
	), nil
}

func newMeterProvider(cfg Config, res *resource.Resource) (*metricsdk.MeterProvider, error) {
	var opts []prometheus.Option
	if cfg.Registerer != nil {
		opts = append(opts, prometheus.WithRegisterer(cfg.Registerer))
	}
	reader, err := prometheus.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Prometheus exporter: %w", err)
	}
	return metricsdk.NewMeterProvider(metricsdk.WithResource(res), metricsdk.WithReader(reader)), nil
}

// splitEndpoint accepts host:port or an http(s) URL and reports whether the
// connection is plaintext.
func splitEndpoint(endpoint string) (host string, insecure bool, err error) {
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		// host:port parses as scheme "host"
		return endpoint, true, nil
	}
	switch u.Scheme {
	case "http":
		return u.Host, true, nil
	case "https":
		return u.Host, false, nil
	default:
		return "", false, fmt.Errorf("unsupported otlp endpoint scheme %q", u.Scheme)
	}
}

// Meter returns a named meter from the provider's Prometheus pipeline, or
// from the global provider when metrics are off.
func (p *Provider) Meter(name string) metric.Meter {
	if p.metrics == nil {
		return otel.Meter(name)
	}
	return p.metrics.Meter(name)
}

// Shutdown flushes and stops whatever the provider started.
func (p *Provider) Shutdown(ctx context.Context) error {
	var errs []error
	if p.traces != nil {
		errs = append(errs, p.traces.Shutdown(ctx))
	}
	if p.metrics != nil {
		errs = append(errs, p.metrics.Shutdown(ctx))
	}
	return errors.Join(errs...)
}
