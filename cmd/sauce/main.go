package main

import "github.com/simonhull/sauce/cmd/sauce/cmd"

func main() {
	cmd.Execute()
}
