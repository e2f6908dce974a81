package main

import (
	"fmt"
	"os"

	"fjacquet/fintrack/cmd/add"
	"fjacquet/fintrack/cmd/categories"
	"fjacquet/fintrack/cmd/export"
	"fjacquet/fintrack/cmd/importcsv"
	"fjacquet/fintrack/cmd/list"
	"fjacquet/fintrack/cmd/recommend"
	"fjacquet/fintrack/cmd/register"
	reportcmd "fjacquet/fintrack/cmd/report"
	"fjacquet/fintrack/cmd/root"
	"fjacquet/fintrack/cmd/summary"
	"fjacquet/fintrack/cmd/users"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(register.Cmd)
	root.Cmd.AddCommand(users.Cmd)
	root.Cmd.AddCommand(add.Cmd)
	root.Cmd.AddCommand(list.Cmd)
	root.Cmd.AddCommand(summary.Cmd)
	root.Cmd.AddCommand(categories.Cmd)
	root.Cmd.AddCommand(recommend.Cmd)
	root.Cmd.AddCommand(reportcmd.Cmd)
	root.Cmd.AddCommand(export.Cmd)
	root.Cmd.AddCommand(importcsv.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
