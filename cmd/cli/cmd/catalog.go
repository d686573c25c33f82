// Package cmd - catalog command
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"compute-cost/clouds"
	"compute-cost/core/catalog"
)

// catalogCmd lists the selectable options: usage rates per tier and
// class, and instance types and regions per provider.
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List usage rates, instance types and regions",
	Long: `Print the usage-rate table and the per-provider instance and region
listing. Estimates only accept values shown here.`,
	Args: cobra.NoArgs,
	RunE: runCatalog,
}

func runCatalog(cmd *cobra.Command, args []string) error {
	rates, err := effectiveRates()
	if err != nil {
		return err
	}

	// The listing never resolves prices, so no pricing client is wired.
	set, err := clouds.Default(nil)
	if err != nil {
		return err
	}

	if err := printRateTable(rates); err != nil {
		return err
	}
	fmt.Println()
	printProviders(set)
	return nil
}

func printRateTable(rates *catalog.RateTable) error {
	fmt.Println("┌─────────────────────────────────────────────────────────────────────────┐")
	fmt.Println("│                 USAGE RATES ($ per unit per node-hour)                  │")
	fmt.Println("├─────────────────────────────────────────────────────────────────────────┤")

	for _, tier := range rates.Tiers() {
		fmt.Printf("│ %-71s │\n", tier)
		classes, err := rates.Classes(tier)
		if err != nil {
			return err
		}
		for _, class := range classes {
			rate, err := rates.Rate(tier, class)
			if err != nil {
				return err
			}
			fmt.Printf("│   └─ %-45s %20s │\n", class, "$"+rate.StringFixed(2))
		}
	}

	fmt.Println("└─────────────────────────────────────────────────────────────────────────┘")
	return nil
}

func printProviders(set *clouds.Set) {
	fmt.Println("┌─────────────────────────────────────────────────────────────────────────┐")
	fmt.Println("│                                PROVIDERS                                │")
	fmt.Println("├─────────────────────────────────────────────────────────────────────────┤")

	for _, provider := range set.Providers() {
		resolver, ok := set.Resolver(provider)
		if !ok {
			continue
		}
		instances := resolver.Instances()
		fmt.Printf("│ %-71s │\n", provider)
		fmt.Printf("│   └─ %-66s │\n", truncate("instances: "+strings.Join(instances.InstanceTypes(), ", "), 66))
		fmt.Printf("│   └─ %-66s │\n", truncate("regions:   "+strings.Join(instances.Regions(), ", "), 66))
	}

	fmt.Println("└─────────────────────────────────────────────────────────────────────────┘")
}
