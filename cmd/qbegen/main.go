package main

import (
	"context"
	"fmt"
	"os"

	"nikand.dev/go/cli"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/slowlang/qbe"
)

func main() {
	helloCmd := &cli.Command{
		Name:        "hello",
		Description: "emit the hello world module from the qbe tutorial",
		Action:      helloAct,
		Args:        cli.Args{},
	}

	app := &cli.Command{
		Name:        "qbegen",
		Description: "qbegen generates sample QBE intermediate language modules",
		Commands: []*cli.Command{
			helloCmd,
		},
	}

	cli.RunAndExit(app, os.Args, os.Environ())
}

func helloAct(c *cli.Command) (err error) {
	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	m := helloModule()

	tlog.SpanFromContext(ctx).Printw("module built", "types", len(m.Types), "funcs", len(m.Functions), "data", len(m.Data))

	_, err = fmt.Printf("%s", m)
	if err != nil {
		return errors.Wrap(err, "write module")
	}

	return nil
}

func helloModule() *qbe.Module {
	m := qbe.NewModule()

	add := m.AddFunction(qbe.NewFunction(qbe.Private(), "add", []qbe.Param{
		{Type: qbe.Word, Name: "a"},
		{Type: qbe.Word, Name: "b"},
	}, qbe.Word))

	blk := add.AddBlock("start")
	blk.AssignInstr("c", qbe.Word, qbe.Add{L: qbe.Temporary("a"), R: qbe.Temporary("b")})
	blk.AddInstr(qbe.Ret{V: qbe.Temporary("c")})

	mf := m.AddFunction(qbe.NewFunction(qbe.Public(), "main", nil, qbe.Word))

	blk = mf.AddBlock("start")
	blk.AssignInstr("r", qbe.Word, qbe.NewCall("add",
		qbe.TypedValue{Type: qbe.Word, Value: qbe.Const(1)},
		qbe.TypedValue{Type: qbe.Word, Value: qbe.Const(1)},
	))
	blk.AddInstr(qbe.NewVariadicCall("printf", 1,
		qbe.TypedValue{Type: qbe.Long, Value: qbe.Global("fmt")},
		qbe.TypedValue{Type: qbe.Word, Value: qbe.Temporary("r")},
	))
	blk.AddInstr(qbe.Ret{V: qbe.Const(0)})

	m.AddData(qbe.NewDataDef(qbe.Private(), "fmt", 0, []qbe.DataField{
		{Type: qbe.Byte, Item: qbe.Str(`One and one make %d!\n`)},
		{Type: qbe.Byte, Item: qbe.Const(0)},
	}))

	return m
}
