package main

import (
	"novanest_backend/internal/app"
)

func main() {
	app.Run()
}
