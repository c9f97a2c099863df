package cli_cmds

import (
	"sync"

	"github.com/spf13/cobra"

	"github.com/ghostbank/ghostbank-go/domain/usecases"
	"github.com/ghostbank/ghostbank-go/factory"
	"github.com/ghostbank/ghostbank-go/internal"
	"github.com/ghostbank/ghostbank-go/internal/cli"
	"github.com/ghostbank/ghostbank-go/services"
)

var (
	globalSession *usecases.Session
	sessionOnce   sync.Once

	globalManager *services.ActorManager
	managerOnce   sync.Once
)

// GetSession returns the wallet session shared by all commands
func GetSession(params *cli.CmdParams) *usecases.Session {
	sessionOnce.Do(func() {
		session, err := factory.NewSession(params.Config, params.Logger)
		if err != nil {
			params.Logger.Fatal(internal.ComponentCLI, "Failed to build session: %v", err)
		}
		globalSession = session
	})
	return globalSession
}

// SetSession replaces the shared session, e.g. after an import
func SetSession(session *usecases.Session) {
	sessionOnce.Do(func() {})
	globalSession = session
}

// GetActorManager returns the global ActorManager with the circuit
// telemetry service registered.
func GetActorManager(params *cli.CmdParams) *services.ActorManager {
	managerOnce.Do(func() {
		manager, err := services.NewActorManager(params.Logger)
		if err != nil {
			params.Logger.Fatal(internal.ComponentCLI, "Failed to create actor manager: %v", err)
		}

		circuit := services.NewCircuitActor(
			params.Config.Telemetry.Nodes,
			params.Config.TelemetryInterval(),
			params.Logger,
		)
		manager.Register("circuit_telemetry", circuit)

		globalManager = manager
	})
	return globalManager
}

// GeneratePalette assembles the command palette for the root command
func GeneratePalette(params *cli.CmdParams) []*cobra.Command {
	return []*cobra.Command{
		NewBalances(params),
		NewHistory(params),
		NewSend(params),
		NewConvert(params),
		NewReceive(params),
		NewExport(params),
		NewImport(params),
		NewDemo(params),
		NewServices(params),
		NewConfig(params),
		NewVersion(params),
	}
}
