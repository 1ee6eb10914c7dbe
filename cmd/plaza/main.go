package main

import "github.com/plazaterm/plaza/internal/cli"

func main() {
	cli.Execute()
}
