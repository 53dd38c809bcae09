// Package main provides a command-line utility to inspect SOR file
// contents: the block table recorded in the map, and an optional hex
// dump of one block's raw bytes by identifier.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/scigolib/sor"
)

func main() {
	block := flag.String("block", "", "identifier of a block to hex-dump (e.g. GenParams)")
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		fmt.Println("Usage: sordump [flags] <file.sor>")
		fmt.Println("Flags:")
		flag.PrintDefaults()
		return
	}

	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read file: %v", err)
	}

	file, err := sor.Parse(data)
	if err != nil {
		log.Fatalf("Failed to parse %s: %v", path, err)
	}

	printBlockTable(file)

	if *block != "" {
		dumpBlock(file, data, *block)
	}

	verdict := file.ValidateChecksum(data)
	fmt.Printf("\nchecksum: %s\n", verdict)
}

func printBlockTable(file *sor.SorFile) {
	fmt.Printf("%-12s %-8s %8s %10s\n", "identifier", "rev", "size", "offset")
	offset := 0
	for _, entry := range file.Map.BlockInfo {
		fmt.Printf("%-12s %-8d %8d %10d\n", entry.Identifier, entry.RevisionNumber, entry.Size, offset)
		offset += int(entry.Size)
	}
}

func dumpBlock(file *sor.SorFile, data []byte, identifier string) {
	offset := 0
	found := false
	var size int
	for _, entry := range file.Map.BlockInfo {
		if entry.Identifier == identifier {
			found = true
			size = int(entry.Size)
			break
		}
		offset += int(entry.Size)
	}
	if !found {
		fmt.Printf("\nblock %q not present in map\n", identifier)
		return
	}
	if offset+size > len(data) {
		fmt.Printf("\nblock %q: recorded size runs past end of file\n", identifier)
		return
	}

	chunk := data[offset : offset+size]
	fmt.Printf("\n%s (%d bytes at offset 0x%x):\n", identifier, size, offset)
	for i := 0; i < len(chunk); i += 16 {
		end := i + 16
		if end > len(chunk) {
			end = len(chunk)
		}
		row := chunk[i:end]

		fmt.Printf("%08x: ", offset+i)
		for j := 0; j < 16; j++ {
			if j < len(row) {
				fmt.Printf("%02x ", row[j])
			} else {
				fmt.Print("   ")
			}
			if j == 7 {
				fmt.Print(" ")
			}
		}
		fmt.Print(" |")
		for _, b := range row {
			if b >= 32 && b <= 126 {
				fmt.Printf("%c", b)
			} else {
				fmt.Print(".")
			}
		}
		fmt.Println("|")
	}
}
