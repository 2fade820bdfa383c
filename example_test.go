package recallgo_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/recallgo"
)

// Example_evaluate demonstrates a minimal recall evaluation.
func Example_evaluate() {
	references := [][]float32{
		{0, 0},
		{10, 10},
		{20, 20},
	}
	queries := [][]float32{
		{0.1, 0.1},
		{9.9, 9.9},
	}

	// Each query's single relevant reference.
	truth := recallgo.SingleRelevant([]uint32{0, 1})

	result, err := recallgo.Evaluate(context.Background(), references, queries, []int{1, 2}, truth,
		recallgo.WithoutReport(),
	)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Recall@1: %.2f\n", result.At(1))
	fmt.Printf("Recall@2: %.2f\n", result.At(2))
	// Output:
	// Recall@1: 1.00
	// Recall@2: 1.00
}

// Example_accelerated demonstrates the reduced precision backend.
func Example_accelerated() {
	references := [][]float32{
		{0, 0},
		{100, 100},
	}
	queries := [][]float32{
		{1, 1},
	}

	truth := recallgo.SingleRelevant([]uint32{0})

	result, err := recallgo.Evaluate(context.Background(), references, queries, []int{1}, truth,
		recallgo.WithAcceleratedIndex(),
		recallgo.WithoutReport(),
	)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Recall@1: %.2f\n", result.At(1))
	// Output: Recall@1: 1.00
}
