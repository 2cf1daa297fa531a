// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/poiesic/semlayer/core"
	"github.com/poiesic/semlayer/search"
)

// demoQuery pairs a canned query with a short description of what it
// exercises.
type demoQuery struct {
	query       string
	description string
}

var demoQueries = []demoQuery{
	{
		query:       "How do new employees sign up for health benefits?",
		description: "Question about employee onboarding and benefits",
	},
	{
		query:       "What are the requirements for processing monthly payroll?",
		description: "Question about payroll and salary processing",
	},
	{
		query:       "How do we approve vendor invoices and payments?",
		description: "Question about procurement and expense management",
	},
	{
		query:       "What documentation is needed for the annual audit?",
		description: "Question about compliance and regulatory requirements",
	},
	{
		query:       "budget allocation and spending limits",
		description: "Question about financial planning (no verb, keyword style)",
	},
}

// stageMonitor prints each pipeline stage as it runs.
type stageMonitor struct{}

var _ search.QueryMonitor = (*stageMonitor)(nil)

func (m *stageMonitor) Start(query string) {
	fmt.Printf("  stage 1: matching concepts against %q\n", query)
}

func (m *stageMonitor) AfterConceptMatch(conceptIds []string) {
	if len(conceptIds) == 0 {
		fmt.Println("  stage 1: no concepts matched")
		return
	}
	fmt.Printf("  stage 1: matched concepts: %s\n", strings.Join(conceptIds, ", "))
}

func (m *stageMonitor) AfterFilter(candidates []*core.Document) {
	fmt.Printf("  stage 2: %d candidate document(s) after concept filter\n", len(candidates))
}

func (m *stageMonitor) Fallback(reason string) {
	fmt.Printf("  stage 2: falling back to the full corpus (%s)\n", reason)
}

func (m *stageMonitor) AfterRank(scored []search.Scored) {
	fmt.Printf("  stage 3: ranked %d candidate(s) by embedding similarity\n", len(scored))
}

func (m *stageMonitor) Finish(results []*core.RankedResult) {
	fmt.Printf("  stage 4: returning %d result(s)\n", len(results))
}

func demoCommand(c *cli.Context) error {
	engine, err := newEngine(c)
	if err != nil {
		return err
	}
	defer engine.Close()

	banner("Concept-Filtered Retrieval Demo")
	fmt.Printf("\nLoaded %d concepts and %d documents.\n",
		len(engine.Graph().All()), len(engine.Store().All()))

	monitor := &stageMonitor{}
	for i, demo := range demoQueries {
		fmt.Printf("\nQuery %d/%d: %q\n", i+1, len(demoQueries), demo.query)
		fmt.Printf("Context: %s\n", demo.description)
		fmt.Println(strings.Repeat("-", 70))

		results, err := engine.QueryWithMonitor(c.Context, demo.query, 2, monitor)
		if err != nil {
			return err
		}
		printResults(results)
	}

	banner("Demo Complete")
	return nil
}

func banner(text string) {
	line := strings.Repeat("=", 70)
	fmt.Printf("\n%s\n %s\n%s\n", line, text, line)
}

func printResults(results []*core.RankedResult) {
	if len(results) == 0 {
		fmt.Println("\nNo results found.")
		return
	}
	for rank, result := range results {
		fmt.Printf("\n%d. %s\n", rank+1, result.Title)
		fmt.Printf("   Document ID: %s\n", result.DocId)
		fmt.Printf("   Relevance Score: %.3f\n", result.Score)
		if len(result.MatchedConcepts) > 0 {
			fmt.Printf("   Matched Concepts: %s\n", strings.Join(result.MatchedConcepts, ", "))
		} else {
			fmt.Println("   Matched Concepts: (none - ranked by embedding similarity)")
		}
		fmt.Printf("   Snippet: %s\n", result.Snippet)
	}
}
