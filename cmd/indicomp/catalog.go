package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"indicomp/internal/catalog"
	"indicomp/internal/models"
	"indicomp/pkg/utils"
)

func (c *cli) countriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "countries",
		Short: "List the countries that can be compared",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := c.bootstrap(false)
			if err != nil {
				return err
			}
			defer a.Close()

			listing, err := a.Session.Entities(cmd.Context(), models.CountryScope())
			if err != nil {
				return fmt.Errorf("failed to list countries: %w", err)
			}

			if listing.Notice != "" {
				fmt.Fprintln(c.stderr, listing.Notice)
			}

			for _, name := range listing.Names {
				fmt.Fprintln(c.stdout, name)
			}

			return nil
		},
	}
}

func (c *cli) regionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "regions [country]",
		Short: "List the states or provinces of a country",
		Long:  "Without an argument, lists the countries that have a region list.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 {
				for _, country := range catalog.RegionCountries() {
					fmt.Fprintln(c.stdout, country)
				}

				return nil
			}

			country, err := resolveRegionCountry(args[0])
			if err != nil {
				return err
			}

			for _, region := range catalog.Regions(country) {
				fmt.Fprintln(c.stdout, region)
			}

			return nil
		},
	}
}

// resolveRegionCountry cleans a parent name and checks that it has a region
// list.
func resolveRegionCountry(raw string) (string, error) {
	country := catalog.CleanName(raw)
	if catalog.Regions(country) != nil {
		return country, nil
	}

	msg := fmt.Sprintf("No state or province list for %q. Available: %s.",
		raw, strings.Join(catalog.RegionCountries(), ", "))
	if near := catalog.Suggest(country, catalog.RegionCountries(), 1); len(near) > 0 {
		msg += fmt.Sprintf(" Did you mean %s?", near[0])
	}

	return "", usagef("%s", msg)
}

func (c *cli) indicatorsCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "indicators",
		Short: "List indicators by group and the quick-select presets",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			width := 0
			for _, ind := range catalog.Indicators() {
				width = max(width, len(ind.Code))
			}

			for _, group := range catalog.Groups() {
				fmt.Fprintf(c.stdout, "%s\n", group)

				for _, ind := range catalog.IndicatorsIn(group) {
					fmt.Fprintf(c.stdout, "  %s  %s\n", utils.PadRight(ind.Code, width), ind.Name)

					if verbose && ind.Description != "" {
						fmt.Fprintf(c.stdout, "  %s    %s\n", strings.Repeat(" ", width), ind.Description)
					}
				}

				fmt.Fprintln(c.stdout)
			}

			fmt.Fprintln(c.stdout, "Presets")

			for i, p := range catalog.Presets() {
				fmt.Fprintf(c.stdout, "  %d. %s: %s\n", i+1, p.Name, strings.Join(p.Indicators, "; "))
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show indicator descriptions")

	return cmd
}
