package main

import "github.com/careerhub/jobboard-client/internal/cli"

func main() {
	cli.Execute()
}
