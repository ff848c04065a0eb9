// cmd/enchrev-predict/main.go
package main

import (
	"enchrev/internal/app"
	"enchrev/internal/appshell"
)

func main() { appshell.Main(app.RunPredictContext) }
