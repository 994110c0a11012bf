package main

import (
	"github.com/msr-works/storefront-backend/internal/app"
)

func main() {
	app.Run()
}
