package services

import (
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/skip2/go-qrcode"

	"wanderlust/internal/models/response_models"
	"wanderlust/pkg/utils"
)

type ShareServiceInterface interface {
	BuildShareURL(itinerary response_models.Itinerary) string
	ParseSharedTrip(values url.Values) response_models.Itinerary
	ShareQRCode(shareURL string, size int) ([]byte, error)
}

type ShareService struct {
	baseURL string
}

func NewShareService() ShareServiceInterface {
	baseURL := os.Getenv("SHARE_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:3000"
	}
	return &ShareService{baseURL: baseURL}
}

// BuildShareURL encodes the itinerary's headline fields as query parameters
// on the /shared path. Day plans, tips and interests are not carried; decode
// reconstructs a partial seed only.
func (s *ShareService) BuildShareURL(itinerary response_models.Itinerary) string {
	params := url.Values{}
	params.Set("destination", itinerary.Destination)
	params.Set("duration", strconv.Itoa(itinerary.TotalDays))
	params.Set("budget", strconv.Itoa(int(itinerary.TotalBudget)))
	params.Set("currency", itinerary.Currency)
	return fmt.Sprintf("%s/shared?%s", s.baseURL, params.Encode())
}

func (s *ShareService) ParseSharedTrip(values url.Values) response_models.Itinerary {
	days, err := strconv.Atoi(values.Get("duration"))
	if err != nil || days < 1 {
		days = 5
	}
	budget, err := strconv.Atoi(values.Get("budget"))
	if err != nil || budget < 1 {
		budget = 2000
	}
	currency := values.Get("currency")
	if currency == "" {
		currency = "USD"
	}
	return response_models.Itinerary{
		Destination: values.Get("destination"),
		TotalDays:   days,
		TotalBudget: float64(budget),
		Currency:    currency,
	}
}

func (s *ShareService) ShareQRCode(shareURL string, size int) ([]byte, error) {
	if shareURL == "" {
		return nil, utils.ErrInvalidInput
	}
	if size < 64 || size > 1024 {
		size = 256
	}
	png, err := qrcode.Encode(shareURL, qrcode.Medium, size)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	return png, nil
}
