package agent

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"time"

	"nearby/internal/domain/entity"
	"nearby/internal/infra/location"
	"nearby/internal/infra/transport"
	"nearby/internal/usecase"

	"go.uber.org/fx"
)

// Stdio is the terminal the console is attached to.
type Stdio struct {
	In  io.Reader
	Out io.Writer
}

// VendorConsoleParams holds dependencies for the vendor console, injected by Fx.
type VendorConsoleParams struct {
	fx.In

	Stdio    Stdio
	Presence usecase.PresenceUsecase
	Session  *transport.Session
	Manual   *location.ManualSource `optional:"true"`
	Logger   *slog.Logger
}

// NewVendorConsole builds the vendor's commands.
func NewVendorConsole(params VendorConsoleParams) *Console {
	c := newConsole(params.Stdio.In, params.Stdio.Out, "vendor> ", params.Logger)
	presence := params.Presence

	c.handle("online", "[lat lng]", func(ctx context.Context, args []string) error {
		var seed *entity.Coordinates
		if len(args) > 0 {
			lat, lng, err := parseCoordinates(args)
			if err != nil {
				return err
			}
			seed = &entity.Coordinates{Latitude: lat, Longitude: lng}
		}
		if err := presence.GoOnline(ctx, seed); err != nil {
			return err
		}
		c.printVendor(presence.Presence())

		return nil
	})

	c.handle("offline", "", func(ctx context.Context, _ []string) error {
		if err := presence.GoOffline(ctx); err != nil {
			return err
		}
		c.printVendor(presence.Presence())

		return nil
	})

	c.handle("radius", "<meters>", func(ctx context.Context, args []string) error {
		if len(args) != 1 {
			return errUsage
		}
		radius, err := parseFloat(args[0])
		if err != nil {
			return err
		}

		return c.applySettings(ctx, presence, entity.DeliverySettings{DeliveryRadius: &radius})
	})

	c.handle("accept", "on|off", func(ctx context.Context, args []string) error {
		if len(args) != 1 {
			return errUsage
		}
		accepting, err := parseSwitch(args[0])
		if err != nil {
			return err
		}

		return c.applySettings(ctx, presence, entity.DeliverySettings{AcceptingOrders: &accepting})
	})

	c.handle("status", "", func(context.Context, []string) error {
		c.printVendor(presence.Presence())
		c.printf("session: %s", params.Session.Status())
		if err := presence.LastLocationError(); err != nil {
			c.failf("location: %v", err)
		}

		return nil
	})

	if params.Manual != nil {
		registerManualSource(c, params.Manual)
	}

	return c
}

// applySettings reports a persistence failure without undoing the local change.
func (c *Console) applySettings(ctx context.Context, presence usecase.PresenceUsecase, settings entity.DeliverySettings) error {
	err := presence.UpdateDeliverySettings(ctx, settings)
	c.printVendor(presence.Presence())

	return err
}

func (c *Console) printVendor(p entity.VendorPresence) {
	since := "-"
	if p.OnlineSince != nil {
		since = p.OnlineSince.Format(time.Kitchen)
	}

	c.table([]string{"online", "accepting", "radius (m)", "position", "since"}, [][]string{{
		strconv.FormatBool(p.IsOnline),
		strconv.FormatBool(p.AcceptingOrders),
		strconv.FormatFloat(p.DeliveryRadiusMeters, 'f', 0, 64),
		formatCoordinates(p.Coordinates),
		since,
	}})
}

// registerManualSource adds the commands that drive a console-fed position.
func registerManualSource(c *Console, source *location.ManualSource) {
	c.handle("move", "<lat> <lng>", func(_ context.Context, args []string) error {
		lat, lng, err := parseCoordinates(args)
		if err != nil {
			return err
		}
		source.Push(entity.Coordinates{Latitude: lat, Longitude: lng}, 5)

		return nil
	})

	c.handle("deny", "on|off", func(_ context.Context, args []string) error {
		if len(args) != 1 {
			return errUsage
		}
		denied, err := parseSwitch(args[0])
		if err != nil {
			return err
		}
		source.SetDenied(denied)

		return nil
	})
}

func formatCoordinates(coords entity.Coordinates) string {
	return strconv.FormatFloat(coords.Latitude, 'f', 5, 64) + ", " + strconv.FormatFloat(coords.Longitude, 'f', 5, 64)
}
