package main

import (
	"github.com/blog-api/internal/cli"
)

func main() {
	cli.Execute()
}
