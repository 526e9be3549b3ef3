package main

import "github.com/VoxDroid/renamr/cmd"

func main() {
	cmd.Execute()
}
