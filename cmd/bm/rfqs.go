package main

import (
	"fmt"

	"github.com/buildmaintain/bm/internal/controller"
	"github.com/buildmaintain/bm/internal/types"
)

func rfqSpec() resourceSpec[types.RFQ] {
	return resourceSpec[types.RFQ]{
		use:      "rfqs",
		singular: "RFQ",
		navPath:  "/rfqs",
		filter:   "status",
		ctrl: controller.Config[types.RFQ]{
			Name: "RFQ",
			ID:   func(r types.RFQ) string { return r.ID },
			SearchFields: func(r types.RFQ) []string {
				return []string{r.Title, r.Description}
			},
			Facet:    func(r types.RFQ) string { return string(r.Status) },
			Defaults: func() map[string]any { return formFields(types.NewRFQForm()) },
			FormFromItem: func(r types.RFQ) map[string]any {
				return formFields(types.RFQForm{
					Title:              r.Title,
					Description:        r.Description,
					ProjectID:          r.ProjectID,
					BOQID:              r.BOQID,
					Deadline:           r.Deadline,
					Items:              r.Items,
					Vendors:            r.Vendors,
					EvaluationCriteria: r.EvaluationCriteria,
					Terms:              r.Terms,
				})
			},
			ValidateForm: validateAs[types.RFQForm],
		},
		headers: []string{"ID", "TITLE", "PROJECT", "STATUS", "VENDORS", "DEADLINE"},
		row: func(r types.RFQ) []string {
			return []string{r.ID, r.Title, r.ProjectName, string(r.Status),
				fmt.Sprintf("%d", len(r.Vendors)), r.Deadline}
		},
	}
}

func init() {
	rootCmd.AddCommand(newResourceCmd(rfqSpec(), func() resourceAPI[types.RFQ] { return api.RFQs }))
}
