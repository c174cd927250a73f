// Package main is an illustrative driver for the package classifier.
// It prints the category for a set of example packages and is not part
// of the sorting line itself.
//
// Usage:
//
//	go run cmd/sortdemo/main.go
package main

import (
	"fmt"

	"github.com/hapkiduki/sortline-go/internal/domain/entity"
)

func main() {
	fmt.Println("Package Sorting System")
	fmt.Println()

	examples := []struct {
		description                 string
		width, height, length, mass float64
	}{
		{"Standard package", 50, 50, 50, 10},
		{"Bulky by volume", 100, 100, 100, 10},
		{"Bulky by dimension", 160, 50, 50, 10},
		{"Heavy package", 50, 50, 50, 25},
		{"Bulky and heavy", 160, 50, 50, 25},
	}

	for _, e := range examples {
		category, err := entity.Sort(e.width, e.height, e.length, e.mass)
		if err != nil {
			fmt.Printf("%s: invalid measurements: %v\n", e.description, err)
			continue
		}
		fmt.Printf("%s: %gx%gx%g cm, %g kg -> %s\n",
			e.description, e.width, e.height, e.length, e.mass, category)
	}
}
