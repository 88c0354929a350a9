package geoquad_test

import (
	"bytes"
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/geoquad"
	"github.com/hupe1980/geoquad/cellset"
)

// Example demonstrates encoding a coordinate and decoding it back.
func Example() {
	code, err := geoquad.Create(10, 20)
	if err != nil {
		log.Fatal(err)
	}

	center := geoquad.Parse(code)
	fmt.Printf("%.2f %.2f\n", center.Lat, center.Lng)
	fmt.Println(geoquad.Contains(code, 10, 20))
	// Output:
	// 10.00 20.00
	// true
}

// Example_neighbors demonstrates stepping around the grid.
func Example_neighbors() {
	code, _ := geoquad.Create(0, 179.999)

	east := geoquad.EastOf(code)
	fmt.Println(geoquad.Parse(east).Lng < 0)
	fmt.Println(geoquad.WestOf(east) == code)

	top, _ := geoquad.Create(90, 0)
	_, err := geoquad.NorthOf(top)
	fmt.Println(err != nil)
	// Output:
	// true
	// true
	// true
}

// Example_nearby demonstrates collecting the cells around a point.
func Example_nearby() {
	grid := geoquad.MustNew(geoquad.WithPrecision(4))
	code, _ := grid.Create(0, 0)

	cells, err := grid.Nearby(code, 0)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(cells.Len())

	all, _ := grid.Nearby(code, 180)
	fmt.Println(all.Len())
	// Output:
	// 1
	// 256
}

// Example_batch demonstrates encoding many coordinates concurrently.
func Example_batch() {
	grid := geoquad.MustNew(geoquad.WithBatchConcurrency(2))

	codes, err := grid.CreateBatch(context.Background(), []geoquad.Coordinate{
		{Lat: -90, Lng: -180},
		{Lat: 89.9999999, Lng: 179.9999999},
	})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(codes[0], codes[1])
	// Output: 00000000 ffffffff
}

// Example_cellset demonstrates persisting a Nearby result.
func Example_cellset() {
	code, _ := geoquad.Create(48.85, 2.35)
	cells, _ := geoquad.Nearby(code, 5*geoquad.GeoquadStep)

	var buf bytes.Buffer
	if err := cells.Encode(&buf, cellset.CompressionZSTD); err != nil {
		log.Fatal(err)
	}

	restored, err := cellset.Decode(&buf)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(restored.Equal(cells))
	// Output: true
}

// Example_metrics demonstrates in-memory metrics collection.
func Example_metrics() {
	metrics := &geoquad.BasicMetricsCollector{}
	grid := geoquad.MustNew(geoquad.WithMetricsCollector(metrics))

	_, _ = grid.Create(10, 20)
	_, _ = grid.Create(91, 20)

	stats := metrics.GetStats()
	fmt.Println(stats.CreateCount, stats.CreateErrors)
	// Output: 2 1
}
