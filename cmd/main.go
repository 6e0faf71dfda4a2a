package main

import (
	cmd "github.com/kerbaras/gameshelf/cmd/gameshelf"
)

func main() {
	cmd.Execute()
}
