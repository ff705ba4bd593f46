package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"vetclinic-server/internal/models"
	"vetclinic-server/internal/utils"
)

// ReportHandler serves the reporting endpoints built over the derived
// counters and invoice/vaccination tables.
type ReportHandler struct {
	DB *gorm.DB
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(db *gorm.DB) *ReportHandler {
	return &ReportHandler{DB: db}
}

// RevenueReport is the revenue endpoint response body.
type RevenueReport struct {
	StartDate    string  `json:"startDate"`
	EndDate      string  `json:"endDate"`
	TotalRevenue float64 `json:"totalRevenue"`
}

// Revenue sums the total amount of paid invoices whose payment date falls in
// [start_date, end_date]. Returns zero when nothing matches.
func (h *ReportHandler) Revenue(c *gin.Context) {
	start, err := time.ParseInLocation("2006-01-02", c.Query("start_date"), time.Local)
	if err != nil {
		utils.BadRequest(c, "Invalid or missing start_date, expected YYYY-MM-DD")
		return
	}
	end, err := time.ParseInLocation("2006-01-02", c.Query("end_date"), time.Local)
	if err != nil {
		utils.BadRequest(c, "Invalid or missing end_date, expected YYYY-MM-DD")
		return
	}

	var total float64
	if err := h.DB.Model(&models.Invoice{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Where("payment_status = ? AND payment_date >= ? AND payment_date < ?",
			models.PaymentPaid, start, end.AddDate(0, 0, 1)).
		Scan(&total).Error; err != nil {
		utils.InternalServerError(c, "Database error: "+err.Error())
		return
	}

	utils.Success(c, "Revenue report generated successfully", RevenueReport{
		StartDate:    start.Format("2006-01-02"),
		EndDate:      end.Format("2006-01-02"),
		TotalRevenue: total,
	})
}

// PopularVeterinarians returns veterinarians ordered by their derived
// appointment counter, busiest first.
func (h *ReportHandler) PopularVeterinarians(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "5"))
	if err != nil || limit <= 0 {
		limit = 5
	}

	var vets []models.Veterinarian
	if err := h.DB.Order("total_appointments desc").Limit(limit).Find(&vets).Error; err != nil {
		utils.InternalServerError(c, "Database error: "+err.Error())
		return
	}
	utils.Success(c, "Popular veterinarians fetched successfully", vets)
}

// VaccinationAlerts returns the vaccination records whose next dose falls in
// [today, today+days], soonest first. The window defaults to 30 days.
func (h *ReportHandler) VaccinationAlerts(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", "30"))
	if err != nil || days <= 0 {
		days = 30
	}

	today := startOfDay(time.Now())
	windowEnd := today.AddDate(0, 0, days+1)

	var records []models.VaccinationRecord
	if err := h.DB.Preload("Pet").Preload("Vaccine").
		Where("next_dose_date >= ? AND next_dose_date < ?", today, windowEnd).
		Order("next_dose_date asc").
		Find(&records).Error; err != nil {
		utils.InternalServerError(c, "Database error: "+err.Error())
		return
	}
	utils.Success(c, "Vaccination alerts fetched successfully", records)
}
