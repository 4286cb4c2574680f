package main

import "github.com/mjanumpa/magicsh/cmd"

func main() {
	cmd.Execute()
}
