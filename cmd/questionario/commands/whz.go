package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lcarotenuto/questionario-ampasilava/internal/domain"
	"github.com/lcarotenuto/questionario-ampasilava/internal/registry"
)

func whzCmd(a *app) *cobra.Command {
	var (
		sex       string
		declared  int
		estimated int
		height    float64
		weight    float64
	)
	cmd := &cobra.Command{
		Use:   "whz",
		Short: "Compute the weight-for-height z-score for one child",
		Example: "  questionario whz --sex M --declared-age 12 --estimated-age 12 --height 75 --weight 7\n" +
			"  questionario whz --sex Femmina --declared-age 20 --height 85 --weight 11.2",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("estimated-age") {
				estimated = declared
			}
			svc := registry.NewService(nil, nil, a.logger, a.metrics)
			res, err := svc.Evaluate(domain.Measurement{
				Sex:          domain.ParseSex(sex),
				DeclaredAge:  declared,
				EstimatedAge: estimated,
				HeightCm:     height,
				WeightKg:     weight,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if res.ZScore == nil {
				fmt.Fprintln(out, "WHZ: -")
				return nil
			}
			fmt.Fprintf(out, "WHZ: %.1f (%s)\n", *res.ZScore, res.Label)
			return nil
		},
	}
	cmd.Flags().StringVar(&sex, "sex", "", "Maschio/Femmina (or M/F)")
	cmd.Flags().IntVar(&declared, "declared-age", 0, "declared age in months")
	cmd.Flags().IntVar(&estimated, "estimated-age", 0, "estimated age in months (defaults to the declared age)")
	cmd.Flags().Float64Var(&height, "height", 0, "height in cm")
	cmd.Flags().Float64Var(&weight, "weight", 0, "weight in kg")
	_ = cmd.MarkFlagRequired("sex")
	_ = cmd.MarkFlagRequired("height")
	_ = cmd.MarkFlagRequired("weight")
	return cmd
}
