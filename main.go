package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/blog-app/blog-backend/db"
	"github.com/blog-app/blog-backend/log"
	"github.com/blog-app/blog-backend/router"
	"github.com/joho/godotenv"
)

func main() {
	// A missing .env is fine when the variables come from the real
	// environment.
	godotenv.Load()

	log.Info.Printf("Starting Blog Backend...\n")

	port := os.Getenv("PORT")
	if port == "" {
		log.Error.Fatalln("$PORT not set")
	}

	pqdb, err := db.Init()
	if err != nil {
		log.Error.Fatalf("%v: %s", err, err)
	}

	r := router.Init(pqdb)

	err = http.ListenAndServe(fmt.Sprintf(":%s", port), r)

	if err != nil {
		log.Error.Fatalf("%v: %s", err, err)
	}
}
