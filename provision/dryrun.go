package provision

import (
	"context"

	"github.com/weft/weft/resolve"
	"go.uber.org/zap"
)

// DryRun is an engine that logs what would be provisioned without touching
// the target cloud. Applied entities keep the identifiers the resolver gave
// them.
type DryRun struct {
	// Logger logs planned operations. If not set, logs are discarded.
	Logger *zap.Logger
}

var _ Engine = (*DryRun)(nil)

// Apply logs every entity in kind resolution order and echoes the
// resolver-assigned identifiers back.
func (e *DryRun) Apply(ctx context.Context, out *resolve.Output) (Assigned, error) {
	logger := e.logger()

	assigned := make(Assigned)
	for _, ref := range out.Refs() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		logger.Info("Would create",
			zap.String("kind", ref.Kind.String()),
			zap.String("name", ref.Name),
			zap.String("id", ref.ID),
		)
		assigned.Add(ref.Kind, ref.Name, ref.ID)
	}
	return assigned, nil
}

// Destroy logs every entity in reverse kind order.
func (e *DryRun) Destroy(ctx context.Context, out *resolve.Output) error {
	logger := e.logger()

	refs := out.Refs()
	for i := len(refs) - 1; i >= 0; i-- {
		if err := ctx.Err(); err != nil {
			return err
		}
		ref := refs[i]
		logger.Info("Would destroy",
			zap.String("kind", ref.Kind.String()),
			zap.String("name", ref.Name),
			zap.String("id", ref.ID),
		)
	}
	return nil
}

func (e *DryRun) logger() *zap.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return zap.NewNop()
}
