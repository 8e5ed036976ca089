package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/xxxsen/davkit/davtest"
)

var bind = flag.String("bind", "127.0.0.1:9991", "bind address")

func main() {
	flag.Parse()
	log.Printf("mock webdav server listening on %s", *bind)
	if err := http.ListenAndServe(*bind, davtest.NewServer().Handler()); err != nil {
		log.Fatalf("serve failed, err:%v", err)
	}
}
