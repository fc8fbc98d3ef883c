package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/OsorioJc-696/Ecommerce-Jc/models"
)

// GET /admin/orders/export
func ExportOrdersToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Preload("Items").Preload("User").Order("order_date DESC").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		// Header row
		headers := []string{
			"OrderID", "User", "Email", "Status", "PaymentMethod",
			"Subtotal", "GiftWrapTotal", "Total", "Items", "OrderDate",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		// Data rows
		for _, o := range orders {
			row := sheet.AddRow()

			row.AddCell().SetValue(o.ID)
			row.AddCell().SetValue(o.User.Username)
			row.AddCell().SetValue(o.BillingEmail)
			row.AddCell().SetValue(string(o.Status))
			row.AddCell().SetValue(string(o.PaymentMethod))
			row.AddCell().SetValue(o.Subtotal)
			row.AddCell().SetValue(o.GiftWrapTotal)
			row.AddCell().SetValue(o.Total)
			row.AddCell().SetValue(len(o.Items))
			row.AddCell().SetValue(o.OrderDate.Format("2006-01-02 15:04:05"))
		}

		// Set response headers for download
		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
