// main.go
package main

import "lca-bot/cmd"

func main() {
	cmd.Execute()
}
