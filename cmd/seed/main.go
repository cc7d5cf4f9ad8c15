package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/yungbote/apollo-backend/internal/app"
	"github.com/yungbote/apollo-backend/internal/platform/shutdown"
)

func main() {
	var asJSON bool
	flag.BoolVar(&asJSON, "json", false, "print the summary as JSON")
	flag.Parse()

	a, err := app.New()
	if err != nil {
		fmt.Printf("init app: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	ctx, stop := shutdown.NotifyContext(context.Background())
	defer stop()

	sum, err := a.Seed(ctx)
	if err != nil {
		fmt.Printf("seed: %v\n", err)
		a.Close()
		os.Exit(1)
	}
	if asJSON {
		_ = json.NewEncoder(os.Stdout).Encode(sum)
		return
	}
	fmt.Printf("seeded roles=%d users=%d surveys=%d contexts=%d questions=%d topics=%d\n",
		sum.Roles, sum.Users, sum.Surveys, sum.Contexts, sum.Questions, sum.Topics)
}
