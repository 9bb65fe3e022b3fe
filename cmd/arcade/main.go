package main

import "github.com/plus3/blockfall/internal/cli"

func main() {
	cli.Execute()
}
