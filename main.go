package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/caarlos0/env/v11"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"github.com/MarcGrol/storyfunnel/lib/mypublisher"
	"github.com/MarcGrol/storyfunnel/lib/mypubsub"
	"github.com/MarcGrol/storyfunnel/lib/mytime"
	"github.com/MarcGrol/storyfunnel/lib/myuuid"
	"github.com/MarcGrol/storyfunnel/services/checkoutstripe"
	"github.com/MarcGrol/storyfunnel/services/funnel"
	"github.com/MarcGrol/storyfunnel/services/reveal"
	"github.com/MarcGrol/storyfunnel/services/warmup"
)

type serverConfig struct {
	Port string `env:"PORT" envDefault:"8080"`
}

func main() {
	c := context.Background()

	err := godotenv.Load()
	if err != nil {
		log.Printf("No .env file loaded: %s", err)
	}

	cfg := serverConfig{}
	err = env.Parse(&cfg)
	if err != nil {
		log.Fatalf("Error parsing server config: %s", err)
	}

	router := mux.NewRouter()

	pubsub, pubsubCleanup, err := mypubsub.New(c)
	if err != nil {
		log.Fatalf("Error creating pubsub: %s", err)
	}
	defer pubsubCleanup()

	publisher := mypublisher.New(pubsub, mytime.RealNower{}, myuuid.RealUUIDer{})

	checkoutService := checkoutstripe.NewWebService(checkoutstripe.LoadConfigFromEnv, checkoutstripe.NewPayer, publisher)
	err = checkoutService.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering checkout service: %s", err)
	}

	funnelService := funnel.NewWebService(reveal.DefaultOptions(), checkoutstripe.CreatePaymentPath, checkoutstripe.CheckoutFormPath)
	err = funnelService.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering funnel service: %s", err)
	}

	warmupService := warmup.NewService(checkoutstripe.LoadConfigFromEnv)
	err = warmupService.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering warmup service: %s", err)
	}

	router.Use(mux.CORSMethodMiddleware(router))

	startWebServerBlocking(router, cfg.Port)
}

func startWebServerBlocking(router *mux.Router, port string) {
	log.Printf("Starting webserver on port %s (try http://localhost:%s)", port, port)
	err := http.ListenAndServe(fmt.Sprintf(":%s", port), router)
	if err != nil {
		log.Fatalf("Error starting webserver on port %s: %s", port, err)
	}
}
