package main

import "cityOps/internal/cli"

func main() {
	cli.Execute()
}
