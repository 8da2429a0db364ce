package agent

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"nearby/internal/domain/entity"
	"nearby/internal/infra/location"
	"nearby/internal/infra/transport"
	"nearby/internal/usecase"

	"go.uber.org/fx"
)

// ConsumerConsoleParams holds dependencies for the consumer console, injected by Fx.
type ConsumerConsoleParams struct {
	fx.In

	Stdio       Stdio
	Proximity   usecase.ProximityUsecase
	Preferences usecase.PreferenceUsecase
	Session     *transport.Session
	Manual      *location.ManualSource `optional:"true"`
	Logger      *slog.Logger
}

// NewConsumerConsole builds the consumer's commands and announces newly
// admitted notifications as they arrive.
func NewConsumerConsole(params ConsumerConsoleParams) *Console {
	c := newConsole(params.Stdio.In, params.Stdio.Out, "consumer> ", params.Logger)
	proximity := params.Proximity
	prefs := params.Preferences

	var (
		mu   sync.Mutex
		seen = make(map[string]struct{})
	)
	proximity.Subscribe(func(records []entity.NotificationRecord) {
		mu.Lock()
		defer mu.Unlock()

		current := make(map[string]struct{}, len(records))
		for _, r := range records {
			current[r.ID()] = struct{}{}
			if _, ok := seen[r.ID()]; !ok {
				c.printf("\n[%s] %s is %.0f m away %s", r.Priority, r.Event.VendorName, r.Event.DistanceMeters, r.Event.Message)
			}
		}
		seen = current
	})

	c.handle("list", "", func(context.Context, []string) error {
		c.printNotifications(proximity.Active())

		return nil
	})

	c.handle("ack", "<notification-id>", func(_ context.Context, args []string) error {
		if len(args) != 1 {
			return errUsage
		}
		if !proximity.Acknowledge(args[0]) {
			c.printf("no active notification %s", args[0])
		}

		return nil
	})

	c.handle("permission", "[request]", func(ctx context.Context, args []string) error {
		if len(args) == 1 && args[0] == "request" {
			if _, err := proximity.RequestAlertPermission(ctx); err != nil {
				return err
			}
		}
		c.printf("alert permission: %s", proximity.Permission())

		return nil
	})

	c.handle("prefs", "[show|enabled on|off|dnd on|off|radius <m>|rating <0-5>|quiet <HH:MM> <HH:MM>|quiet off|vendors <a,b>|reload]", func(ctx context.Context, args []string) error {
		if len(args) == 0 || args[0] == "show" {
			c.printPreferences(prefs.Current())

			return nil
		}
		if args[0] == "reload" {
			loaded, err := prefs.Load(ctx)
			c.printPreferences(loaded)

			return err
		}

		next, err := editPreferences(prefs.Current(), args)
		if err != nil {
			return err
		}
		err = prefs.Save(ctx, next)
		c.printPreferences(prefs.Current())

		return err
	})

	c.handle("status", "", func(context.Context, []string) error {
		c.printf("session: %s, active notifications: %d, alert permission: %s",
			params.Session.Status(), len(proximity.Active()), proximity.Permission())

		return nil
	})

	if params.Manual != nil {
		registerManualSource(c, params.Manual)
	}

	return c
}

func editPreferences(prefs entity.NotificationPreferences, args []string) (entity.NotificationPreferences, error) {
	if len(args) < 2 {
		return prefs, errUsage
	}

	switch args[0] {
	case "enabled":
		on, err := parseSwitch(args[1])
		if err != nil {
			return prefs, err
		}
		prefs.Enabled = on
	case "dnd":
		on, err := parseSwitch(args[1])
		if err != nil {
			return prefs, err
		}
		prefs.DoNotDisturb = on
	case "radius":
		radius, err := parseFloat(args[1])
		if err != nil {
			return prefs, err
		}
		prefs.RadiusMeters = radius
	case "rating":
		rating, err := parseFloat(args[1])
		if err != nil {
			return prefs, err
		}
		prefs.MinimumRating = rating
	case "quiet":
		if args[1] == "off" {
			prefs.QuietHours.Enabled = false

			break
		}
		if len(args) != 3 {
			return prefs, errUsage
		}
		prefs.QuietHours = entity.QuietHours{Enabled: true, Start: args[1], End: args[2]}
	case "vendors":
		prefs.VendorCategories = strings.Split(args[1], ",")
	default:
		return prefs, errUsage
	}

	return prefs, nil
}

func (c *Console) printNotifications(records []entity.NotificationRecord) {
	if len(records) == 0 {
		c.printf("no active notifications")

		return
	}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.ID(),
			string(r.Priority),
			r.Event.VendorName,
			strconv.FormatFloat(r.Event.DistanceMeters, 'f', 0, 64),
			r.Event.EstimatedArrival,
			r.ExpiresAt.Format(time.TimeOnly),
		})
	}

	c.table([]string{"id", "priority", "vendor", "distance (m)", "eta", "expires"}, rows)
}

func (c *Console) printPreferences(p entity.NotificationPreferences) {
	quiet := "off"
	if p.QuietHours.Enabled {
		quiet = p.QuietHours.Start + "-" + p.QuietHours.End
	}

	c.table([]string{"enabled", "dnd", "radius (m)", "min rating", "quiet hours", "vendor types"}, [][]string{{
		strconv.FormatBool(p.Enabled),
		strconv.FormatBool(p.DoNotDisturb),
		strconv.FormatFloat(p.RadiusMeters, 'f', 0, 64),
		strconv.FormatFloat(p.MinimumRating, 'f', 1, 64),
		quiet,
		strings.Join(p.VendorCategories, ","),
	}})
}
