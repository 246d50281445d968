package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/lead-scripter/internal/enrich"
	"github.com/jonathan/lead-scripter/internal/llm"
	"github.com/jonathan/lead-scripter/internal/observability"
	"github.com/jonathan/lead-scripter/internal/pipeline"
	"github.com/jonathan/lead-scripter/internal/scrape"
	"github.com/jonathan/lead-scripter/internal/script"
	"github.com/jonathan/lead-scripter/internal/types"
)

var (
	generateCompanyURL  string
	generateLinkedInURL string
	generateVerbose     bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one outreach script from the command line",
	Long:  `Run the script-generation pipeline once for a company URL and a LinkedIn profile URL and print the result.`,
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateCompanyURL, "company-url", "", "Company website URL to scrape (required)")
	generateCmd.Flags().StringVar(&generateLinkedInURL, "linkedin-url", "", "LinkedIn profile URL to enrich (required)")
	generateCmd.Flags().BoolVar(&generateVerbose, "verbose", false, "Print derived insights and talking points")
	_ = generateCmd.MarkFlagRequired("company-url")
	_ = generateCmd.MarkFlagRequired("linkedin-url")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	llmClient := llm.NewGeminiClient(nil)
	defer func() { _ = llmClient.Close() }()

	var onProgress pipeline.ProgressCallback
	if generateVerbose {
		onProgress = func(event pipeline.ProgressEvent) {
			fmt.Printf("[%s] %s\n", event.Step, event.Message)
		}
	}

	p := pipeline.New(pipeline.Options{
		Fetcher:    scrape.NewClient(nil),
		Enricher:   enrich.NewClient(nil),
		Generator:  script.NewSynthesizer(llmClient),
		OnProgress: onProgress,
	})

	result, err := p.Run(context.Background(), &types.GenerateScriptRequest{
		CompanyURL:  generateCompanyURL,
		LinkedInURL: generateLinkedInURL,
	})
	if err != nil {
		return err
	}

	if generateVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintLeadInsights(&result.Insights)
		printer.PrintPersonalizationPoints(result.PersonalizationPoints)
		printer.PrintProvenance(result.CompanyProvenance, result.ProfileProvenance)
	}

	fmt.Fprintln(cmd.OutOrStdout(), result.Script)
	return nil
}
