package main

import "github.com/mkravets/meetsync/internal/server"

func main() {
	server.NewServer().Run()
}
