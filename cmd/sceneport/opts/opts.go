package opts

import (
	"context"

	"github.com/walteh/sceneport/pkg/config"
	"github.com/walteh/sceneport/pkg/engine"
	"github.com/walteh/sceneport/pkg/log"
	"github.com/walteh/sceneport/pkg/scene"
	"gitlab.com/tozd/go/errors"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	Config *config.Config
	Logger *log.Logger
	Host   string // selected profile name, "" for the default
	Addr   string // explicit address override
}

// Connect dials the selected host profile and wraps it in a session.
// The caller owns the session and must Close it.
func (o *RootOpts) Connect(ctx context.Context) (*scene.Session, error) {
	h, err := o.Config.Host(o.Host)
	if err != nil {
		return nil, errors.Errorf("selecting host: %w", err)
	}

	eopts := h.Options()
	if o.Addr != "" {
		eopts.Address = o.Addr
	}

	eng, err := engine.New(ctx, h.Engine, eopts)
	if err != nil {
		return nil, errors.Errorf("connecting to %s: %w", eopts.Address, err)
	}

	log.FromContext(ctx).StartHostOperation(ctx, log.HostOperation{
		Host:    h.Name,
		Address: eopts.Address,
		Engine:  h.Engine,
	})

	return scene.NewSession(eng), nil
}
