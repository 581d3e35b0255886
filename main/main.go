package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/upcgen/hepmc2lhe"
)

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <INPUT_FILE> <BEAM_1_E> <BEAM_2_E>\n", os.Args[0])
}

func main() {
	if len(os.Args) != 4 {
		printUsage()
		os.Exit(1)
	}

	beamE1, err := strconv.ParseFloat(os.Args[2], 64)
	if err != nil { log.Fatalf("Invalid beam 1 energy: %s", os.Args[2]) }
	beamE2, err := strconv.ParseFloat(os.Args[3], 64)
	if err != nil { log.Fatalf("Invalid beam 2 energy: %s", os.Args[3]) }

	fmt.Println("Converting UPCGen HEPMC output to LHE format")

	nEvt, outName, err := hepmc2lhe.Convert(os.Args[1], beamE1, beamE2)
	if err != nil { log.Fatal(err.Error()) }

	fmt.Printf("%d events written in %s\n", nEvt, outName)
}
