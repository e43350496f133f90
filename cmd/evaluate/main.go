package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"startupmentor/client"
	"startupmentor/models"
)

func main() {
	server := flag.String("server", "http://localhost:5000", "base URL of the evaluation server")
	description := flag.String("description", "", "startup idea description (required)")
	location := flag.String("location", "", "target location or market")
	audience := flag.String("audience", "", "target audience")
	pricing := flag.String("pricing", "", "pricing model")
	industry := flag.String("industry", "", "industry category")
	flag.Parse()

	controller := client.NewSubmissionController(*server, func(title, detail string) {
		fmt.Printf("%s %s\n", title, detail)
	})

	controller.SetForm(models.IdeaSubmission{
		Description:  *description,
		Location:     *location,
		Audience:     *audience,
		PricingModel: models.NormalizePricingModel(*pricing),
		Industry:     models.NormalizeIndustry(*industry),
	})

	if err := controller.Submit(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "submit refused: %v\n", err)
		os.Exit(1)
	}

	state := controller.State()
	if state.Phase != client.Succeeded {
		os.Exit(1)
	}
	printVerdict(*state.Verdict)
}

func printVerdict(v models.EvaluationVerdict) {
	fmt.Printf("\nSuccess Score: %d/100 (%s)\n", v.SuccessScore, models.ScoreTier(v.SuccessScore))

	printList("Strengths", v.Strengths)
	printList("Weaknesses", v.Weaknesses)
	fmt.Printf("\nMarket Potential:\n  %s\n", v.MarketPotential)
	fmt.Printf("\nCompetition:\n  %s\n", v.Competition)
	fmt.Printf("\nLocation Insights:\n  %s\n", v.LocationInsights)
	printList("Improvements", v.Improvements)
	printList("Monetization", v.Monetization)
	fmt.Printf("\nMVP Suggestion:\n  %s\n", v.MVPSuggestion)
}

func printList(title string, items []string) {
	fmt.Printf("\n%s:\n", title)
	for _, item := range items {
		fmt.Printf("  - %s\n", item)
	}
}
