package main

import "github.com/pandodao/carbon-wallet/cmd/carbon-cli/cmd"

func main() {
	cmd.Execute()
}
