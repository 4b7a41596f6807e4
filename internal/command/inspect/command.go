package inspect

import (
	"fmt"
	"io"

	"github.com/beevik/etree"
	"github.com/dustin/go-humanize"
	"github.com/logicossoftware/go-odf"
	"github.com/logicossoftware/go-odf/internal/command/common"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "List the members of a package",
		ArgsUsage: "<package>",
		Action: func(ctx *cli.Context) error {
			doc, path, err := common.LoadInput(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			if err := printSummary(ctx.App.Writer, path, doc); err != nil {
				return errors.WithStack(err)
			}

			return nil
		},
	}
}

func printSummary(w io.Writer, path string, doc *odf.Document) error {
	mimetype := doc.Mimetype()
	if mimetype == "" {
		mimetype = "(none)"
	}

	if _, err := fmt.Fprintf(w, "package:  %s\nmimetype: %s\n", path, mimetype); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "content:  %s\nstyles:   %s\n", rootTag(doc.Content), rootTag(doc.Styles)); err != nil {
		return err
	}

	for _, name := range doc.MemberNames() {
		size := uint64(len(doc.Members[name]))
		if _, err := fmt.Fprintf(w, "%10s  %s\n", humanize.IBytes(size), name); err != nil {
			return err
		}
	}

	return nil
}

func rootTag(doc *etree.Document) string {
	if doc == nil || doc.Root() == nil {
		return "(absent)"
	}
	return doc.Root().FullTag()
}
