package main

import (
	"github.com/soalpich/soalpich-web/internal/cli"
)

func main() {
	cli.Execute()
}
