package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func newLoggerApp(level string) *cli.App {
	return &cli.App{
		Name: "test",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Value: level,
			},
		},
		Before: setupLogger,
		Action: func(c *cli.Context) error { return nil },
	}
}

func TestSetupLogger(t *testing.T) {
	t.Run("valid log levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error", "DEBUG", "Info"} {
			t.Run(level, func(t *testing.T) {
				err := newLoggerApp(level).Run([]string{"test"})
				assert.NoError(t, err)
			})
		}
	})

	t.Run("invalid log level", func(t *testing.T) {
		err := newLoggerApp("verbose").Run([]string{"test"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})
}

func TestImportCommandValidation(t *testing.T) {
	app := &cli.App{
		Name: "reelrank",
		Commands: []*cli.Command{
			{
				Name:   "import",
				Action: importCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "file",
						Aliases:  []string{"f"},
						Required: true,
					},
				},
			},
		},
	}

	t.Run("missing file flag fails", func(t *testing.T) {
		err := app.Run([]string{"reelrank", "import"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "file")
	})
}
