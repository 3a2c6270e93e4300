package main

import "github.com/rawbytedev/tagwire/internal/cli"

func main() {
	cli.Execute()
}
