package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/xdg-go/bib"
	"go.mongodb.org/mongo-driver/bson"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: bibperf <bib file> [iterations]")
	}
	inputFile := os.Args[1]
	bibData, err := os.ReadFile(inputFile)
	if err != nil {
		log.Fatal(err)
	}
	iterations := 100
	if len(os.Args) > 2 {
		if _, err := fmt.Sscanf(os.Args[2], "%d", &iterations); err != nil {
			log.Fatal(err)
		}
	}
	benchParse(bibData, iterations)
	benchParseBSON(bibData, iterations)
	benchDriverBSON(bibData, iterations)
}

func benchParse(input []byte, n int) {
	start := time.Now()
	for i := 0; i < n; i++ {
		_, err := bib.ParseBytes(input)
		if err != nil {
			log.Fatal(err)
		}
	}
	elapsed := time.Since(start)
	reportResult("parse", len(input)*n, elapsed)
}

func benchParseBSON(input []byte, n int) {
	buf := make([]byte, 0, 4096)

	start := time.Now()
	for i := 0; i < n; i++ {
		doc, err := bib.ParseBytes(input)
		if err != nil {
			log.Fatal(err)
		}
		buf, err = doc.AppendBSON(buf[0:0])
		if err != nil {
			log.Fatal(err)
		}
	}
	elapsed := time.Since(start)
	reportResult("parse+bson", len(input)*n, elapsed)
}

// benchDriverBSON encodes the same entries through the driver's reflection
// based encoder for comparison.
func benchDriverBSON(input []byte, n int) {
	start := time.Now()
	for i := 0; i < n; i++ {
		doc, err := bib.ParseBytes(input)
		if err != nil {
			log.Fatal(err)
		}
		entries := bson.A{}
		for _, be := range doc.Bibliographies() {
			tags := bson.M{}
			for _, t := range be.Tags() {
				tags[t.Key] = t.Value
			}
			entries = append(entries, bson.M{"type": be.EntryType, "key": be.CitationKey, "tags": tags})
		}
		_, err = bson.Marshal(bson.M{"entries": entries})
		if err != nil {
			log.Fatal(err)
		}
	}
	elapsed := time.Since(start)
	reportResult("parse+driver", len(input)*n, elapsed)
}

func reportResult(label string, size int, elapsed time.Duration) {
	throughput := float64(size) / float64(elapsed.Microseconds())
	fmt.Printf("%15s %.2f MB/s\n", label, throughput)
}
