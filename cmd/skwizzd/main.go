package main

import "github.com/LeJamon/goSkwizz/internal/cli"

func main() {
	cli.Execute()
}
