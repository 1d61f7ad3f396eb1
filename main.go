package main

import "scholar-portal/cmd"

func main() {
	cmd.Execute()
}
