package main

import (
	"log"

	"github.com/ASpurbo/meal-lens-ai-85-sub000/config"
	"github.com/ASpurbo/meal-lens-ai-85-sub000/routes"
	"github.com/ASpurbo/meal-lens-ai-85-sub000/services"
	"github.com/ASpurbo/meal-lens-ai-85-sub000/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()
	utils.InitMailer()

	hub := services.NewRealtimeHub()
	push, err := services.NewPushService(config.DB)
	if err != nil {
		log.Fatalf("push service init failed: %v", err)
	}
	services.InitProgressDeps(config.DB, hub, push)

	r := routes.SetupRouter(hub, push)
	r.Run(":8080")
}
