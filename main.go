package main

import "github.com/saadjs/glp-cli/cmd/glp"

func main() {
	glp.Execute()
}
