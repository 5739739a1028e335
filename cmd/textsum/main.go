package main

import "textsum/internal/cli"

func main() {
	cli.Execute()
}
