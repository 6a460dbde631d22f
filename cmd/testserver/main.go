//nolint:errcheck,forbidigo,gosec // test utility allows simpler error handling and direct output
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
)

func main() {
	port := flag.Int("port", 8080, "Port to listen on")
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		fmt.Println("Usage: testserver [options] <feed.json> [shutdowns-page.html]")
		fmt.Println("\nServes the JSON feed at /feed and the optional scrape page at /shutdowns/.")
		fmt.Println("\nOptions:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	feedPath := args[0]
	var pagePath string
	if len(args) > 1 {
		pagePath = args[1]
	}

	if _, err := os.Stat(feedPath); os.IsNotExist(err) {
		log.Fatalf("Feed file does not exist: %s", feedPath)
	}
	if pagePath != "" {
		if _, err := os.Stat(pagePath); os.IsNotExist(err) {
			log.Fatalf("Shutdowns page file does not exist: %s", pagePath)
		}
	}

	http.HandleFunc("/feed", func(w http.ResponseWriter, r *http.Request) {
		serveFile(w, feedPath, "application/json; charset=utf-8")
	})
	http.HandleFunc("/shutdowns/", func(w http.ResponseWriter, r *http.Request) {
		if pagePath == "" {
			http.Error(w, "Shutdowns page not configured", http.StatusNotFound)
			log.Printf("Shutdowns page requested but not configured")
			return
		}
		serveFile(w, pagePath, "text/html; charset=utf-8")
	})

	addr := fmt.Sprintf(":%d", *port)
	log.Printf("Test server listening on %s", addr)
	log.Printf("Feed: %s -> http://localhost%s/feed", feedPath, addr)
	if pagePath != "" {
		log.Printf("Shutdowns page: %s -> http://localhost%s/shutdowns/", pagePath, addr)
	}
	log.Println("\nFiles are read on each request, so you can edit them while the server is running.")

	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func serveFile(w http.ResponseWriter, path, contentType string) {
	content, err := os.ReadFile(path)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to read file: %v", err), http.StatusInternalServerError)
		log.Printf("Error reading %s: %v", path, err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Write(content)
	log.Printf("Served %s (%d bytes)", path, len(content))
}
