package main

import "github.com/aalvaropc/lpdash/internal/cli"

func main() {
	cli.Execute()
}
