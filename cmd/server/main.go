package main

import "github.com/kishoreadhith-v/clubs-api/cmd/server/cmd"

func main() {
	cmd.Execute()
}
