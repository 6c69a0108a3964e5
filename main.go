package main

import "github.com/hoppxi/lumo/internal/cmd"

func main() {
	cmd.Execute()
}
