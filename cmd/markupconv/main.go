// Converts object detection datasets between the Internal, InternalCSV and PascalVOC markup
// formats.
package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/sensorable/markupconv"
	"github.com/sensorable/markupconv/internal/config"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	} else if err != nil {
		log.Fatal("Invalid arguments: ", err)
	}

	conv, err := cfg.Conversion()
	if errors.Is(err, markupconv.ErrUnsupportedConversion) {
		log.Fatalf("This conversion is not supported (%v). Supported conversions are: %v",
			err, markupconv.Conversions())
	} else if err != nil {
		log.Fatal(err)
	}

	opts := markupconv.Options{LabelMappings: cfg.LabelMappings}
	if err := markupconv.Convert(conv.From, conv.To, cfg.InputFolder, cfg.OutputFolder, opts); err != nil {
		log.Fatal("Conversion failed: ", err)
	}

	log.Printf("Successfully converted %q to %q (%v)", cfg.InputFolder, cfg.OutputFolder, conv)
}
