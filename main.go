package main

import "vaultview/cmd"

func main() {
	cmd.Execute()
}
