package unpack

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/logicossoftware/go-odf"
	"github.com/logicossoftware/go-odf/internal/command/common"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const (
	flagOut = "out"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:      "unpack",
		Usage:     "Extract every member of a package into a directory",
		ArgsUsage: "<package>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     flagOut,
				Aliases:  []string{"o"},
				Usage:    "Output directory",
				EnvVars:  []string{"ODPKG_UNPACK_OUT"},
				Required: true,
			},
		},
		Action: func(ctx *cli.Context) error {
			doc, _, err := common.LoadInput(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			outDir := ctx.String(flagOut)

			files, err := collect(doc)
			if err != nil {
				return errors.WithStack(err)
			}

			for name, data := range files {
				if err := writeMember(outDir, name, data); err != nil {
					return errors.WithStack(err)
				}
				slog.InfoContext(ctx.Context, "wrote member", slog.String("name", name), slog.Int("size", len(data)))
			}

			return nil
		},
	}
}

// collect returns the members as Save would write them, including the
// regenerated content.xml and styles.xml.
func collect(doc *odf.Document) (map[string][]byte, error) {
	files := make(map[string][]byte, len(doc.Members)+2)
	for name, b := range doc.Members {
		files[name] = b
	}

	if doc.Content != nil {
		b, err := doc.Content.WriteToBytes()
		if err != nil {
			return nil, errors.Wrap(err, "could not serialize content.xml")
		}
		files[odf.ContentMember] = b
	}

	if doc.Styles != nil {
		b, err := doc.Styles.WriteToBytes()
		if err != nil {
			return nil, errors.Wrap(err, "could not serialize styles.xml")
		}
		files[odf.StylesMember] = b
	}

	return files, nil
}

func writeMember(outDir string, name string, data []byte) error {
	target := filepath.Join(outDir, filepath.FromSlash(name))

	rel, err := filepath.Rel(outDir, target)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) || filepath.IsAbs(name) {
		return errors.Errorf("member '%s' escapes the output directory", name)
	}

	if strings.HasSuffix(name, "/") {
		return errors.WithStack(os.MkdirAll(target, 0o755))
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return errors.WithStack(err)
	}

	if err := os.WriteFile(target, data, 0o644); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
