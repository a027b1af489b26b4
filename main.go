package main

import (
	"github.com/mys721tx/sonicat/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
