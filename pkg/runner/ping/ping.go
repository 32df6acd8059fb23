// Package ping checks that the schedule backend is up.
package ping

import (
	"context"

	"github.com/fatih/color"
)

// HealthChecker is the slice of the schedule client ping needs.
type HealthChecker interface {
	Health(ctx context.Context) error
}

type Ping struct {
	Client  HealthChecker
	Backend string
}

func (p *Ping) Do(ctx context.Context) error {
	if err := p.Client.Health(ctx); err != nil {
		return err
	}
	ok := color.New(color.FgGreen)
	_, _ = ok.Printf("backend %s: ok\n", p.Backend)
	return nil
}
