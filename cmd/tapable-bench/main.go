// Command tapable-bench runs a YAML-described set of hook scenarios and
// reports how long each took to call, structured the way the teacher's
// own CLI commands are (urfave/cli/v3 cli.Command with Before/Action).
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/WB9292/tapable/internal/ex"
	"github.com/WB9292/tapable/internal/util"
)

const exitCodeFailure = 1

func main() {
	app := &cli.Command{
		Name:  "tapable-bench",
		Usage: "run a YAML-described set of tapable hook scenarios and time them",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Aliases:  []string{"f"},
				Usage:    "path to a scenario YAML file",
				Required: true,
			},
			&cli.IntFlag{
				Name:  "concurrency",
				Usage: "maximum scenarios run at once",
				Value: 4,
			},
		},
		Before: initLogger,
		Action: runCommand,
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		ex.Fatal(err)
	}
}

func initLogger(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	return util.ContextWithLogger(ctx, logger), nil
}

func runCommand(ctx context.Context, cmd *cli.Command) error {
	sf, err := loadScenarios(cmd.String("file"))
	if err != nil {
		return cli.Exit(err, exitCodeFailure)
	}

	results := runAll(ctx, sf.Scenarios, cmd.Int("concurrency"))
	for _, r := range results {
		if r.Err != nil {
			fmt.Printf("%-20s FAILED: %v\n", r.Name, r.Err)
			continue
		}
		fmt.Printf("%-20s %v\n", r.Name, r.Duration)
	}
	return nil
}
