package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/buildmaintain/bm/internal/controller"
	"github.com/buildmaintain/bm/internal/types"
)

func invoiceSpec() resourceSpec[types.Invoice] {
	return resourceSpec[types.Invoice]{
		use:      "invoices",
		singular: "invoice",
		navPath:  "/invoices",
		filter:   "status",
		ctrl: controller.Config[types.Invoice]{
			Name: "invoice",
			ID:   func(i types.Invoice) string { return i.ID },
			SearchFields: func(i types.Invoice) []string {
				return []string{i.InvoiceNumber, i.TenantName}
			},
			Facet: func(i types.Invoice) string { return string(i.Status) },
			FormFromItem: func(i types.Invoice) map[string]any {
				return formFields(types.InvoiceForm{
					TenantID:           i.TenantID,
					BillingPeriod:      i.BillingPeriod,
					Items:              i.Items,
					DueDate:            i.DueDate,
					IsRecurring:        i.IsRecurring,
					RecurringFrequency: i.RecurringFrequency,
					ParentInvoice:      i.ParentInvoice,
					Notes:              i.Notes,
				})
			},
			ValidateForm: validateAs[types.InvoiceForm],
		},
		headers: []string{"ID", "NUMBER", "TENANT", "STATUS", "TOTAL", "DUE"},
		row: func(i types.Invoice) []string {
			return []string{i.ID, i.InvoiceNumber, i.TenantName, string(i.Status),
				fmt.Sprintf("%.2f", i.Total), i.DueDate}
		},
	}
}

var (
	paymentMethod    string
	paymentReference string
	paymentNotes     string
)

var addPaymentCmd = &cobra.Command{
	Use:   "add-payment <invoice-id> <amount>",
	Short: "Record a payment against an invoice",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := requireAccess("/invoices"); err != nil {
			exitErr("%v", err)
		}
		amount, err := strconv.ParseFloat(args[1], 64)
		if err != nil || amount <= 0 {
			exitErr("amount must be a positive number")
		}
		payment := types.PaymentForm{
			Amount:    amount,
			Method:    types.PaymentMethod(paymentMethod),
			Reference: paymentReference,
			Notes:     paymentNotes,
		}
		if err := payment.Validate(); err != nil {
			exitErr("%v", err)
		}
		invoice, err := api.Invoices.AddPayment(cmd.Context(), args[0], payment)
		if err != nil {
			exitErr("%v", err)
		}
		notifier.Successf("invoice", "Payment recorded; %s is now %s", invoice.InvoiceNumber, invoice.Status)
	},
}

func init() {
	cmd := newResourceCmd(invoiceSpec(), func() resourceAPI[types.Invoice] { return api.Invoices })
	addPaymentCmd.Flags().StringVar(&paymentMethod, "method", "bank_transfer", "payment method")
	addPaymentCmd.Flags().StringVar(&paymentReference, "reference", "", "transaction reference")
	addPaymentCmd.Flags().StringVar(&paymentNotes, "notes", "", "payment notes")
	cmd.AddCommand(addPaymentCmd)
	rootCmd.AddCommand(cmd)
}
