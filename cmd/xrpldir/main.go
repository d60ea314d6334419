package main

import "github.com/LeJamon/xrpldir/internal/cli"

func main() {
	cli.Execute()
}
