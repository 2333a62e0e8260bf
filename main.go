package main

import "clash/cmd"

func main() {
	cmd.Execute()
}
