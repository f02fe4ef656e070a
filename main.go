package main

import "propmap-server/cmd"

var Version = "development"

func main() {
	cmd.Execute(Version)
}
