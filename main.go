package main

import (
	cmd "github.com/teemo-ai/estimation-server/cmd/teemo"
)

func main() {
	cmd.Execute()
}
