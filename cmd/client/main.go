package main

import (
	"vanishnote/cmd/client/cmd"
)

func main() {
	cmd.Execute()
}
