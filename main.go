package main

import "gamyam/internal/app"

func main() {
	app.Run()
}
