package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/buildmaintain/bm/internal/controller"
	"github.com/buildmaintain/bm/internal/types"
)

func bidSpec() resourceSpec[types.Bid] {
	return resourceSpec[types.Bid]{
		use:      "bids",
		singular: "bid",
		navPath:  "/bids",
		filter:   "status",
		ctrl: controller.Config[types.Bid]{
			Name: "bid",
			ID:   func(b types.Bid) string { return b.ID },
			SearchFields: func(b types.Bid) []string {
				return []string{b.RFQTitle, b.VendorName}
			},
			Facet:    func(b types.Bid) string { return string(b.Status) },
			Defaults: func() map[string]any { return formFields(types.NewBidForm()) },
			FormFromItem: func(b types.Bid) map[string]any {
				return formFields(types.BidForm{
					RFQID:             b.RFQID,
					Amount:            b.Amount,
					Currency:          b.Currency,
					ValidityPeriod:    b.ValidityPeriod,
					Items:             b.Items,
					TechnicalProposal: b.TechnicalProposal,
					DeliveryTimeline:  b.DeliveryTimeline,
					Terms:             b.Terms,
				})
			},
			ValidateForm: validateAs[types.BidForm],
		},
		headers: []string{"ID", "RFQ", "VENDOR", "STATUS", "AMOUNT", "SCORE"},
		row: func(b types.Bid) []string {
			score := "-"
			if b.Evaluation != nil {
				score = fmt.Sprintf("%.1f", b.Evaluation.Score)
			}
			return []string{b.ID, b.RFQTitle, b.VendorName, string(b.Status),
				fmt.Sprintf("%.2f %s", b.Amount, b.Currency), score}
		},
	}
}

var submitForm = types.NewBidForm()

var submitBidCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit a bid against an RFQ",
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := requireAccess("/bids"); err != nil {
			exitErr("%v", err)
		}
		if err := submitForm.Validate(); err != nil {
			exitErr("%v", err)
		}
		bid, err := api.Bids.Create(cmd.Context(), submitForm)
		if err != nil {
			exitErr("%v", err)
		}
		notifier.Successf("bid", "Submitted %s for %.2f %s", bid.ID, bid.Amount, bid.Currency)
	},
}

var evalForm types.BidEvaluationForm

var evaluateBidCmd = &cobra.Command{
	Use:   "evaluate <bid-id>",
	Short: "Score a bid against its RFQ criteria",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := requireAccess("/bids"); err != nil {
			exitErr("%v", err)
		}
		if err := evalForm.Validate(); err != nil {
			exitErr("%v", err)
		}
		bid, err := api.Bids.Evaluate(cmd.Context(), args[0], evalForm)
		if err != nil {
			exitErr("%v", err)
		}
		score := "-"
		if bid.Evaluation != nil {
			score = fmt.Sprintf("%.1f", bid.Evaluation.Score)
		}
		notifier.Successf("bid", "Evaluated %s: score %s", bid.ID, score)
	},
}

var selectBidCmd = &cobra.Command{
	Use:   "select <bid-id>",
	Short: "Mark a bid as the winning response to its RFQ",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := requireAccess("/bids"); err != nil {
			exitErr("%v", err)
		}
		bid, err := api.Bids.Select(cmd.Context(), args[0])
		if err != nil {
			exitErr("%v", err)
		}
		notifier.Successf("bid", "Selected %s from %s", bid.ID, bid.VendorName)
	},
}

func init() {
	cmd := newResourceCmd(bidSpec(), func() resourceAPI[types.Bid] { return api.Bids })
	submitBidCmd.Flags().StringVar(&submitForm.RFQID, "rfq", "", "RFQ the bid answers")
	submitBidCmd.Flags().Float64Var(&submitForm.Amount, "amount", 0, "bid amount")
	submitBidCmd.Flags().StringVar(&submitForm.Currency, "currency", submitForm.Currency, "currency code")
	submitBidCmd.Flags().IntVar(&submitForm.ValidityPeriod, "validity", submitForm.ValidityPeriod, "validity period in days")
	submitBidCmd.Flags().StringVar(&submitForm.TechnicalProposal, "proposal", "", "technical proposal")
	submitBidCmd.Flags().StringVar(&submitForm.DeliveryTimeline, "timeline", "", "delivery timeline")
	submitBidCmd.Flags().StringVar(&submitForm.Terms, "terms", "", "commercial terms")
	evaluateBidCmd.Flags().Float64Var(&evalForm.Score, "score", 0, "overall score (0-100)")
	evaluateBidCmd.Flags().Float64Var(&evalForm.PriceScore, "price", 0, "price score (0-100)")
	evaluateBidCmd.Flags().Float64Var(&evalForm.QualityScore, "quality", 0, "quality score (0-100)")
	evaluateBidCmd.Flags().Float64Var(&evalForm.DeliveryScore, "delivery", 0, "delivery score (0-100)")
	evaluateBidCmd.Flags().StringVar(&evalForm.Notes, "notes", "", "evaluation notes")
	cmd.AddCommand(submitBidCmd, evaluateBidCmd, selectBidCmd)
	rootCmd.AddCommand(cmd)
}
