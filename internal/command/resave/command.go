package resave

import (
	"log/slog"

	"github.com/logicossoftware/go-odf"
	"github.com/logicossoftware/go-odf/internal/command/common"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const (
	flagOut           = "out"
	flagMethod        = "method"
	flagLevel         = "level"
	flagMimetypeFirst = "mimetype-first"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:      "resave",
		Usage:     "Load a package and save it again, regenerating content.xml and styles.xml",
		ArgsUsage: "<package>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     flagOut,
				Aliases:  []string{"o"},
				Usage:    "Output package path",
				Required: true,
			},
			&cli.StringFlag{
				Name:    flagMethod,
				Usage:   "Compression method (store, deflate, zstd)",
				Value:   odf.MethodDeflate.String(),
				EnvVars: []string{"ODPKG_METHOD"},
			},
			&cli.IntFlag{
				Name:    flagLevel,
				Usage:   "Deflate level (-2 to 9, -1 for the default)",
				Value:   -1,
				EnvVars: []string{"ODPKG_LEVEL"},
			},
			&cli.BoolFlag{
				Name:    flagMimetypeFirst,
				Usage:   "Write the mimetype member first and uncompressed",
				EnvVars: []string{"ODPKG_MIMETYPE_FIRST"},
			},
		},
		Action: func(ctx *cli.Context) error {
			method, err := common.ParseMethod(ctx.String(flagMethod))
			if err != nil {
				return errors.WithStack(err)
			}

			doc, path, err := common.LoadInput(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			out := ctx.String(flagOut)

			err = doc.SaveFile(out,
				odf.WithMethod(method),
				odf.WithLevel(ctx.Int(flagLevel)),
				odf.WithMimetypeFirst(ctx.Bool(flagMimetypeFirst)),
			)
			if err != nil {
				return errors.Wrapf(err, "could not save '%s'", out)
			}

			slog.InfoContext(ctx.Context, "package saved",
				slog.String("from", path),
				slog.String("to", out),
				slog.String("method", method.String()),
				slog.Int("members", len(doc.Members)),
			)

			return nil
		},
	}
}
