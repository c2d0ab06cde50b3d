package main

import "github.com/vigil-sh/vigil/cmd"

func main() {
	cmd.Execute()
}
