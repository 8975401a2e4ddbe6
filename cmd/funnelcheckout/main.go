package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/MarcGrol/storyfunnel/lib/myhttpclient"
	"github.com/MarcGrol/storyfunnel/lib/myuuid"
	"github.com/MarcGrol/storyfunnel/services/checkoutclient"
	"github.com/MarcGrol/storyfunnel/services/contracttests"
)

func main() {
	email := flag.String("email", "", "email address to start the checkout for")
	dryRun := flag.Bool("dry-run", false, "use an in-memory session creator and print the url instead of opening it")
	flag.Parse()

	_ = godotenv.Load()

	c := context.Background()
	uuider := myuuid.RealUUIDer{}

	var (
		creator checkoutclient.SessionCreator
		opener  checkoutclient.Opener
	)
	if *dryRun {
		creator = contracttests.NewFakeSessionCreator(uuider)
		opener = checkoutclient.NewWriterOpener(os.Stdout)
	} else {
		cfg := checkoutclient.LoadConfigFromEnv()
		creator = checkoutclient.NewRemoteSessionCreator(cfg, myhttpclient.New(cfg.Timeout))
		opener = checkoutclient.NewBrowserOpener()
	}

	initiator := checkoutclient.NewInitiator(creator, opener, checkoutclient.NewWriterNotifier(os.Stderr), uuider)

	outcome, err := initiator.Submit(c, *email)
	if err != nil {
		log.Fatalf("Error starting checkout: %s", err)
	}

	log.Printf("Checkout %s %s", outcome.Status, outcome.URL)
}
