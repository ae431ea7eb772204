package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/domkit"
)

func main() {
	count := flag.Int("count", 1000, "Number of elements to generate")
	keep := flag.Bool("keep", false, "Keep the benchmark document after running")
	flag.Parse()

	benchDir, err := os.MkdirTemp("", "domkit_bench_")
	if err != nil {
		panic(err)
	}
	defer func() {
		if !*keep {
			os.RemoveAll(benchDir)
		} else {
			fmt.Printf("Keeping bench dir: %s\n", benchDir)
		}
	}()

	// 1. Generate a document with count list items
	fmt.Printf("Generating %d elements in %s...\n", *count, benchDir)
	startGen := time.Now()

	var b strings.Builder
	b.WriteString("<html><head><title>bench</title></head><body><ul id=\"items\">")
	for i := 0; i < *count; i++ {
		fmt.Fprintf(&b, "<li class=\"item\" data-n=\"%d\">Item %d</li>", i, i)
	}
	b.WriteString("</ul></body></html>")

	file := filepath.Join(benchDir, "bench.html")
	if err := os.WriteFile(file, []byte(b.String()), 0644); err != nil {
		panic(err)
	}
	fmt.Printf("Generation took: %v\n", time.Since(startGen))

	// 2. Parse
	startParse := time.Now()
	d, err := domkit.Open(file)
	if err != nil {
		panic(err)
	}
	fmt.Printf("Parse took: %v\n", time.Since(startParse))

	// 3. Resolve the full collection (selector compiled per call, no caching)
	startQuery := time.Now()
	nodes, err := d.GetAll(domkit.Sel("li.item"))
	if err != nil {
		panic(err)
	}
	fmt.Printf("QueryAll took: %v (Items: %d)\n", time.Since(startQuery), len(nodes))

	// 4. Mutate every item
	startUpdate := time.Now()
	if _, err := d.Each(domkit.Refs(nodes...), func(n domkit.Node, i int) {
		_, _ = d.Toggle(domkit.Ref(n), "even", i%2 == 0)
	}); err != nil {
		panic(err)
	}
	fmt.Printf("Toggle sweep took: %v\n", time.Since(startUpdate))

	// 5. Render back
	startRender := time.Now()
	out, err := os.Create(filepath.Join(benchDir, "out.html"))
	if err != nil {
		panic(err)
	}
	defer out.Close()
	if err := d.Render(out); err != nil {
		panic(err)
	}
	fmt.Printf("Render took: %v\n", time.Since(startRender))
}
