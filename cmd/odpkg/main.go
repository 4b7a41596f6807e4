package main

import (
	"github.com/logicossoftware/go-odf/internal/command"
	"github.com/logicossoftware/go-odf/internal/command/inspect"
	"github.com/logicossoftware/go-odf/internal/command/resave"
	"github.com/logicossoftware/go-odf/internal/command/unpack"
)

func main() {
	command.Main(
		"odpkg", "Inspect and rewrite OpenDocument packages",
		inspect.Command(),
		unpack.Command(),
		resave.Command(),
	)
}
