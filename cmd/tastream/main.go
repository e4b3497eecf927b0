package main

import (
	"github.com/c9s/tastream/pkg/cmd"
)

func main() {
	cmd.Execute()
}
