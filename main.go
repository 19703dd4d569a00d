package main

import "github.com/dotcommander/racas/cmd"

func main() {
	cmd.Execute()
}
