package main

import "ue-intellisense/cmd"

func main() {
	cmd.Execute()
}
