package main

import (
	"os"

	"github.com/giapha-vn/giapha/cmd/giapha"
)

func main() {
	if err := giapha.Execute(); err != nil {
		os.Exit(1)
	}
}
