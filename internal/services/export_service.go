package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"wanderlust/internal/models/response_models"
	"wanderlust/pkg/utils"
)

type ExportServiceInterface interface {
	ExportTripPDF(ctx context.Context, trip *response_models.SavedTrip) ([]byte, error)
}

type ExportService struct{}

func NewExportService() ExportServiceInterface {
	return &ExportService{}
}

// ExportTripPDF renders a saved trip's itinerary as a PDF and returns raw
// bytes, no filesystem involved.
func (s *ExportService) ExportTripPDF(ctx context.Context, trip *response_models.SavedTrip) ([]byte, error) {
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	var itinerary response_models.Itinerary
	if len(trip.Itinerary) > 0 {
		if err := json.Unmarshal(trip.Itinerary, &itinerary); err != nil {
			return nil, utils.ErrInvalidInput
		}
	}
	symbol := utils.GetCurrencySymbol(itinerary.Currency)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	pdf.SetFillColor(30, 58, 95)
	pdf.Rect(0, 0, 210, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 8)
	pdf.CellFormat(100, 10, "Wanderlust", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(20, 18)
	pdf.CellFormat(170, 6, "AI Travel Itinerary", "", 1, "L", false, 0, "")

	pdf.SetY(35)
	pdf.SetTextColor(0, 0, 0)

	sectionHeader := func(title string) {
		pdf.SetFillColor(30, 58, 95)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(170, 8, "  "+title, "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)
	}

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(55, 7, label, "", 0, "L", false, 0, "")
		pdf.SetTextColor(20, 20, 20)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(115, 7, value, "", 1, "L", false, 0, "")
	}

	sectionHeader("Trip Overview")
	row("Title", trip.Title)
	row("Destination", trip.Destination)
	if trip.StartDate != "" || trip.EndDate != "" {
		row("Dates", fmt.Sprintf("%s to %s", trip.StartDate, trip.EndDate))
	}
	row("Travelers", fmt.Sprintf("%d", trip.Travelers))
	row("Budget", utils.FormatCurrency(trip.Budget, itinerary.Currency))
	row("Generated", time.Now().UTC().Format("02 Jan 2006, 15:04 UTC"))
	pdf.Ln(4)

	if itinerary.Overview != "" {
		sectionHeader("Overview")
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(40, 40, 40)
		pdf.MultiCell(170, 5, itinerary.Overview, "", "L", false)
		pdf.Ln(4)
	}

	for _, day := range itinerary.DailyItinerary {
		if pdf.GetY() > 240 {
			pdf.AddPage()
		}
		sectionHeader(fmt.Sprintf("Day %d: %s", day.Day, day.Title))
		for _, activity := range day.Activities {
			pdf.SetFont("Helvetica", "B", 10)
			pdf.SetTextColor(20, 20, 20)
			pdf.CellFormat(170, 6, fmt.Sprintf("%s  %s (%s%.0f)", activity.Time, activity.Activity, symbol, activity.EstimatedCost), "", 1, "L", false, 0, "")
			if activity.Description != "" {
				pdf.SetFont("Helvetica", "", 9)
				pdf.SetTextColor(90, 90, 90)
				pdf.MultiCell(170, 4.5, activity.Description, "", "L", false)
			}
			pdf.Ln(1)
		}
		row("Breakfast", mealLine(day.Meals.Breakfast, symbol))
		row("Lunch", mealLine(day.Meals.Lunch, symbol))
		row("Dinner", mealLine(day.Meals.Dinner, symbol))
		if day.Accommodation.Suggestion != "" {
			row("Stay", fmt.Sprintf("%s (%s%.0f)", day.Accommodation.Suggestion, symbol, day.Accommodation.Cost))
		}
		pdf.Ln(3)
	}

	if pdf.GetY() > 220 {
		pdf.AddPage()
	}
	sectionHeader("Budget Breakdown")
	breakdown := itinerary.BudgetBreakdown
	row("Accommodation", utils.FormatCurrency(breakdown.Accommodation, itinerary.Currency))
	row("Food", utils.FormatCurrency(breakdown.Food, itinerary.Currency))
	row("Activities", utils.FormatCurrency(breakdown.Activities, itinerary.Currency))
	row("Transportation", utils.FormatCurrency(breakdown.Transportation, itinerary.Currency))
	row("Miscellaneous", utils.FormatCurrency(breakdown.Miscellaneous, itinerary.Currency))
	pdf.Ln(4)

	if len(itinerary.TravelTips) > 0 {
		sectionHeader("Travel Tips")
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(40, 40, 40)
		for _, tip := range itinerary.TravelTips {
			pdf.MultiCell(170, 5, "- "+tip, "", "L", false)
		}
		pdf.Ln(4)
	}

	pdf.SetY(-22)
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.3)
	pdf.Line(20, pdf.GetY(), 190, pdf.GetY())
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(150, 150, 150)
	pdf.CellFormat(0, 8,
		"Generated by Wanderlust AI Travel Planner · Costs are model estimates, verify before booking",
		"", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("PDF output failed: %w", err)
	}
	return buf.Bytes(), nil
}

func mealLine(meal response_models.Meal, symbol string) string {
	if meal.Suggestion == "" {
		return "N/A"
	}
	return fmt.Sprintf("%s (%s%.0f)", meal.Suggestion, symbol, meal.Cost)
}
