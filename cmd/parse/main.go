// Command parse extracts structured policy fields from a single .txt or
// .pdf insurance document and writes the result as JSON.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"policyparse/internal/extractor"
	"policyparse/internal/ingest"
	"policyparse/internal/jsonexport"
	"policyparse/internal/normalizer"
	"policyparse/internal/validator"
)

func main() {
	output := flag.String("o", "", "write JSON to this file instead of stdout")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: parse [-o output.json] <document.txt|document.pdf>\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(flag.Arg(0), *output); err != nil {
		log.Fatal(err)
	}
}

func run(inputPath, outputPath string) error {
	rawText, sourceType, err := ingest.ReadDocument(inputPath)
	if err != nil {
		return err
	}

	normalized, err := normalizer.Normalize(rawText)
	if err != nil {
		return err
	}

	engine := extractor.New()
	data, err := engine.Extract(normalized)
	if err != nil {
		return err
	}
	report := validator.Validate(data)

	if outputPath != "" {
		if err := jsonexport.WriteFile(outputPath, data); err != nil {
			return err
		}
		fmt.Printf("Parsed %s (%s), output saved to %s\n", inputPath, sourceType, outputPath)
	} else {
		if err := jsonexport.Write(os.Stdout, data); err != nil {
			return err
		}
	}

	printSummary(report)
	return nil
}

func printSummary(report *validator.Report) {
	fmt.Println("\nValidation:")
	for _, key := range []string{validator.GroupPolicyInfo, validator.GroupFinancialInfo, validator.GroupCoverageInfo} {
		group := report.Groups[key]
		mark := "✓"
		if !group.Complete {
			mark = "✗"
		}
		fmt.Printf("%s %s", mark, key)
		if len(group.Missing) > 0 {
			fmt.Printf(" (missing: %v)", group.Missing)
		}
		fmt.Println()
	}
	if report.IsComplete {
		fmt.Println("\n✓ All required fields extracted")
	} else {
		fmt.Printf("\n⚠ Document may be incomplete (confidence %.0f%%)\n", report.Confidence*100)
	}
}
