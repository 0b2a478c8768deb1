package routes

import (
	"contractor_pipeline/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathInvoices = "/invoices"

func addInvoiceRoutes(rg *gin.RouterGroup, invoiceHandler *handlers.InvoiceHandler, paymentHandler *handlers.InvoicePaymentHandler) {
	invoices := rg.Group(PathInvoices)
	{
		invoices.POST("", invoiceHandler.CreateInvoice)
		invoices.GET("/:id", invoiceHandler.GetInvoice)
		invoices.PATCH("/:id", invoiceHandler.UpdateInvoice)
		invoices.POST("/:id/issue", invoiceHandler.IssueInvoice)
		invoices.POST("/:id/pay", invoiceHandler.MarkInvoicePaid)
		invoices.POST("/:id/overdue", invoiceHandler.MarkInvoiceOverdue)

		invoices.POST("/:id/payments", paymentHandler.CollectPayment)
		invoices.GET("/:id/payments", paymentHandler.ListPayments)
	}
}
