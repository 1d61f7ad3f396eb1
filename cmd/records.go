package cmd

import (
	"fmt"
	"text/tabwriter"

	"scholar-portal/pkg/models"

	"github.com/spf13/cobra"
)

var pendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "List publications waiting for a coordinator's approval",
	RunE: func(cmd *cobra.Command, args []string) error {
		coordinatorID, _ := cmd.Flags().GetString("coordinator")
		if coordinatorID == "" {
			return fmt.Errorf("--coordinator is required")
		}
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		pubs, err := newClient(cfg).ListPublications(cmd.Context(), coordinatorID)
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tSTATUS\tCITE AS")
		for _, p := range pubs {
			fmt.Fprintf(w, "%s\t%s\t%s\n", p.ID, p.Status, p.CiteAs)
		}
		return w.Flush()
	},
}

var patentsCmd = &cobra.Command{
	Use:   "patents",
	Short: "List a faculty member's patents",
	RunE: func(cmd *cobra.Command, args []string) error {
		facultyID, _ := cmd.Flags().GetString("faculty")
		if facultyID == "" {
			return fmt.Errorf("--faculty is required")
		}
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		patents, err := newClient(cfg).ListPatents(cmd.Context(), facultyID)
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tSTATUS\tINVENTORS\tTITLE\tPROOF")
		for _, p := range patents {
			proof := "-"
			if p.Proof != "" {
				proof = models.ClassifyProof(p.Proof).String()
			}
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n", p.ID, p.Status, p.NumOfInventors, p.InventionTitle, proof)
		}
		return w.Flush()
	},
}

func init() {
	pendingCmd.Flags().String("coordinator", "", "coordinator id")
	patentsCmd.Flags().String("faculty", "", "faculty id")
	rootCmd.AddCommand(pendingCmd, patentsCmd)
}
