package common

import (
	"log/slog"

	"github.com/logicossoftware/go-odf"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

// LoadInput loads the package named by the first positional argument.
func LoadInput(ctx *cli.Context) (*odf.Document, string, error) {
	if ctx.NArg() != 1 {
		return nil, "", errors.Errorf("expected exactly one package path, got %d", ctx.NArg())
	}

	path := ctx.Args().First()

	slog.DebugContext(ctx.Context, "loading package", slog.String("path", path))

	doc, err := odf.LoadFile(path)
	if err != nil {
		return nil, "", errors.Wrapf(err, "could not load '%s'", path)
	}

	return doc, path, nil
}
