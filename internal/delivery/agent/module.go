package agent

import (
	"os"

	"go.uber.org/fx"
)

func newStdio() Stdio {
	return Stdio{In: os.Stdin, Out: os.Stdout}
}

var provideRunner = fx.Annotate(NewRunner, fx.ResultTags(`group:"deliveries"`))

// VendorModule provides the vendor console on the process terminal.
//
//nolint:gochecknoglobals
var VendorModule = fx.Options(
	fx.Provide(newStdio, NewVendorConsole, provideRunner),
)

// ConsumerModule provides the consumer console on the process terminal.
//
//nolint:gochecknoglobals
var ConsumerModule = fx.Options(
	fx.Provide(newStdio, NewConsumerConsole, provideRunner),
)
