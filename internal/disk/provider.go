package disk

import (
	"context"
	"errors"
)

// ErrNoSnapshot is returned by providers that have nothing to report.
var ErrNoSnapshot = errors.New("no disk snapshot available")

// Provider produces disk snapshots on demand.
type Provider interface {
	Snapshot(ctx context.Context) (*SystemDiskInfo, error)
}

// StaticProvider returns a fixed snapshot. A nil Info yields ErrNoSnapshot.
type StaticProvider struct {
	Info *SystemDiskInfo
}

// NewSampleProvider returns a StaticProvider serving SampleSnapshot.
func NewSampleProvider() *StaticProvider {
	return &StaticProvider{Info: SampleSnapshot()}
}

// Snapshot implements Provider.
func (p *StaticProvider) Snapshot(ctx context.Context) (*SystemDiskInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if p.Info == nil {
		return nil, ErrNoSnapshot
	}
	return p.Info, nil
}
