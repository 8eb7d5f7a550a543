package main

import "github.com/llehouerou/encore/internal/cli"

func main() {
	cli.Execute()
}
